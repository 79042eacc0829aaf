package root

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/rnote/internal/constants"
	"github.com/Paintersrp/rnote/internal/logging"
	"github.com/Paintersrp/rnote/internal/state"
	"github.com/Paintersrp/rnote/pkg/cmd/auth"
	"github.com/Paintersrp/rnote/pkg/cmd/note"
	"github.com/Paintersrp/rnote/pkg/cmd/notebook"
	"github.com/Paintersrp/rnote/pkg/cmd/profile"
	"github.com/Paintersrp/rnote/pkg/cmd/settings"
	"github.com/Paintersrp/rnote/pkg/cmd/tags"
)

var (
	endpoint    string
	profileName string
	verbose     bool
	logLevel    string
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Search, browse and create notes on a remote note service.",
		Long: heredoc.Doc(`
			rnote talks to a hosted note service. It pages through search results,
			prints your tag hierarchy as a tree, and files new notes from the terminal.

			              [title]       [tags]
			  rnote note create robotics "robotics science study-notes"
			  rnote tag list --depth 2 --count
		`),
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := s.UseProfile(profileName); err != nil {
				return err
			}

			level, err := resolveLevel()
			if err != nil {
				return err
			}
			s.SetLogOutput(level, cmd.ErrOrStderr())
			s.Logger.Debug("starting",
				slog.String("command", cmd.CommandPath()),
				slog.String("profile", s.ProfileName),
				slog.String("endpoint", s.Settings().Endpoint),
			)

			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&endpoint, "endpoint", "", "Note service base URL for this run")
	pf.StringVarP(&profileName, "profile", "p", "", "Profile to use for this run")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log requests and paging to stderr")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	for key, flag := range map[string]string{"endpoint": "endpoint", "log_level": "log-level"} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}

	cmd.AddCommand(
		auth.NewCmdAuth(s),
		note.NewCmdNote(s),
		notebook.NewCmdNotebook(s),
		tags.NewCmdTags(s),
		settings.NewCmdSettings(s),
		profile.NewCmdProfile(s),
	)

	return cmd, nil
}

// resolveLevel picks the log level: --verbose, then --log-level or
// RNOTE_LOG_LEVEL, then warn.
func resolveLevel() (slog.Level, error) {
	if verbose {
		return slog.LevelDebug, nil
	}
	raw := strings.TrimSpace(viper.GetString("log_level"))
	if raw == "" {
		return slog.LevelWarn, nil
	}
	return logging.ParseLevel(raw)
}
