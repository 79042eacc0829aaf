package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Paintersrp/rnote/internal/config"
	"github.com/Paintersrp/rnote/internal/constants"
	"github.com/Paintersrp/rnote/internal/logging"
	"github.com/Paintersrp/rnote/internal/remote"
)

// State is built once per invocation. Collections fetched from the service
// are stored on it the first time a command asks for them.
type State struct {
	Config      *config.Config
	Profile     *config.Profile
	ProfileName string
	Home        string
	Logger      *slog.Logger

	client    *remote.Client
	tags      []remote.Tag
	notebooks []remote.Notebook
	counts    *remote.NoteCounts
}

func NewState(profileOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	if err := config.LoadEnv(wd); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	if profileOverride != "" {
		if err := cfg.ActivateProfile(profileOverride); err != nil {
			return nil, err
		}
	}

	p, err := cfg.ActiveProfile()
	if err != nil {
		return nil, err
	}

	return &State{
		Config:      cfg,
		Profile:     p,
		ProfileName: cfg.CurrentProfile,
		Home:        home,
		Logger:      logging.New(slog.LevelWarn, os.Stderr),
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// UseProfile switches the run to another stored profile and drops anything
// fetched with the previous one.
func (s *State) UseProfile(name string) error {
	if name == "" || name == s.ProfileName {
		return nil
	}
	if err := s.Config.ActivateProfile(name); err != nil {
		return err
	}

	s.Profile = s.Config.MustProfile()
	s.ProfileName = s.Config.CurrentProfile
	s.reset()
	return nil
}

// SetLogOutput replaces the logger with one writing at level to w.
func (s *State) SetLogOutput(level slog.Level, w io.Writer) {
	s.Logger = logging.New(level, w)
	s.client = nil
}

func (s *State) Settings() config.Settings {
	return s.Config.Settings()
}

// Client returns the API client for the effective settings, creating it on
// first use.
func (s *State) Client() (*remote.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	settings := s.Settings()
	if err := config.ValidateEndpoint(settings.Endpoint); err != nil {
		return nil, err
	}

	c, err := remote.New(
		settings.Endpoint,
		settings.Token,
		remote.WithTimeout(settings.RequestTimeout),
		remote.WithRateLimit(rateFor(settings.RatePerSecond)),
		remote.WithLogger(s.Logger),
	)
	if err != nil {
		return nil, err
	}

	s.client = c
	return c, nil
}

// rateFor maps the configured rate onto limiter settings. Zero uses the
// default and a negative rate turns pacing off.
func rateFor(perSecond float64) (float64, int) {
	if perSecond == 0 {
		return constants.DefaultRatePerSecond, constants.DefaultRateBurst
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return perSecond, burst
}

// SetToken stores a new token on the active profile. The next Client call
// picks it up.
func (s *State) SetToken(token string) error {
	if err := s.Config.ChangeToken(token); err != nil {
		return err
	}
	s.reset()
	return nil
}

// Context attaches the state's logger to ctx.
func (s *State) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, s.Logger)
}

func (s *State) Tags(ctx context.Context) ([]remote.Tag, error) {
	if s.tags != nil {
		return s.tags, nil
	}

	c, err := s.Client()
	if err != nil {
		return nil, err
	}
	tags, err := c.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if tags == nil {
		tags = []remote.Tag{}
	}

	s.tags = tags
	return tags, nil
}

func (s *State) Notebooks(ctx context.Context) ([]remote.Notebook, error) {
	if s.notebooks != nil {
		return s.notebooks, nil
	}

	c, err := s.Client()
	if err != nil {
		return nil, err
	}
	notebooks, err := c.ListNotebooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notebooks: %w", err)
	}
	if notebooks == nil {
		notebooks = []remote.Notebook{}
	}

	s.notebooks = notebooks
	return notebooks, nil
}

// NoteCounts returns per-tag and per-notebook counts over every note.
func (s *State) NoteCounts(ctx context.Context) (*remote.NoteCounts, error) {
	if s.counts != nil {
		return s.counts, nil
	}

	c, err := s.Client()
	if err != nil {
		return nil, err
	}
	counts, err := c.FindNoteCounts(ctx, remote.NoteFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}

	s.counts = counts
	return counts, nil
}

// Forget drops the stored collections, e.g. after a create command changed
// them on the server.
func (s *State) Forget() {
	s.tags = nil
	s.notebooks = nil
	s.counts = nil
}

func (s *State) reset() {
	s.client = nil
	s.Forget()
}
