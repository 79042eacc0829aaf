package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/rnote/internal/constants"
)

type ExportConfig struct {
	S3Region    string `yaml:"s3_region"     json:"s3_region"`
	S3Endpoint  string `yaml:"s3_endpoint"   json:"s3_endpoint"`
	S3AccessKey string `yaml:"s3_access_key" json:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key" json:"-"`
}

// Profile holds the connection settings for one account on one note service.
type Profile struct {
	Endpoint       string        `yaml:"endpoint"        json:"endpoint"`
	Token          string        `yaml:"token"           json:"-"`
	DefaultCount   int           `yaml:"default_count"   json:"default_count"`
	DefaultDepth   int           `yaml:"default_depth"   json:"default_depth"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"`
	RatePerSecond  float64       `yaml:"rate_per_second" json:"rate_per_second"`
	Export         ExportConfig  `yaml:"export"          json:"export"`
}

type Config struct {
	Profiles       map[string]*Profile `yaml:"profiles"        json:"profiles"`
	CurrentProfile string              `yaml:"current_profile" json:"current_profile"`

	home   string
	active *Profile
}

// Settings is the effective configuration after flags and environment
// variables have been layered over the active profile.
type Settings struct {
	Endpoint       string
	Token          string
	DefaultCount   int
	DefaultDepth   int
	RequestTimeout time.Duration
	RatePerSecond  float64
	Export         ExportConfig
}

// Keys accepted by Set, in display order.
var Keys = []string{
	"endpoint",
	"default_count",
	"default_depth",
	"request_timeout",
	"rate_per_second",
	"export.s3_region",
	"export.s3_endpoint",
	"export.s3_access_key",
	"export.s3_secret_key",
}

func NewProfile() *Profile {
	p := &Profile{}
	p.ensureDefaults()
	return p
}

func (p *Profile) ensureDefaults() {
	p.Endpoint = strings.TrimSpace(p.Endpoint)
	if p.Endpoint == "" {
		p.Endpoint = constants.DefaultEndpoint
	}
	if p.DefaultCount <= 0 {
		p.DefaultCount = constants.DefaultCount
	}
	if p.DefaultDepth < 0 {
		p.DefaultDepth = constants.DefaultDepth
	}
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = constants.DefaultRequestTimeout
	}
	if p.RatePerSecond == 0 {
		p.RatePerSecond = constants.DefaultRatePerSecond
	}
}

func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}
	return nil
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.home = home

	if err := cfg.ensureInitialized(); err != nil {
		return nil, err
	}

	ws, err := cfg.ActiveProfile()
	if err != nil {
		return nil, err
	}

	if err := ValidateEndpoint(ws.Endpoint); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) ensureInitialized() error {
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}

	if cfg.CurrentProfile == "" {
		if len(cfg.Profiles) == 0 {
			cfg.Profiles[constants.DefaultProfile] = NewProfile()
			cfg.CurrentProfile = constants.DefaultProfile
		} else {
			cfg.CurrentProfile = cfg.ProfileNames()[0]
		}
	}

	return cfg.setActiveProfile(cfg.CurrentProfile)
}

func (cfg *Config) setActiveProfile(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	p, ok := cfg.Profiles[name]
	if !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}
	if p == nil {
		p = NewProfile()
		cfg.Profiles[name] = p
	}

	p.ensureDefaults()
	cfg.CurrentProfile = name
	cfg.active = p

	cfg.syncViperWithActiveProfile()

	return nil
}

// syncViperWithActiveProfile registers the profile values as viper defaults so
// bound flags and RNOTE_* environment variables still take precedence.
func (cfg *Config) syncViperWithActiveProfile() {
	if cfg.active == nil {
		return
	}

	p := cfg.active
	viper.SetDefault("endpoint", p.Endpoint)
	viper.SetDefault("token", p.Token)
	viper.SetDefault("default_count", p.DefaultCount)
	viper.SetDefault("default_depth", p.DefaultDepth)
	viper.SetDefault("request_timeout", p.RequestTimeout)
	viper.SetDefault("rate_per_second", p.RatePerSecond)
	viper.SetDefault("export.s3_region", p.Export.S3Region)
	viper.SetDefault("export.s3_endpoint", p.Export.S3Endpoint)
	viper.SetDefault("export.s3_access_key", p.Export.S3AccessKey)
	viper.SetDefault("export.s3_secret_key", p.Export.S3SecretKey)
}

// Settings resolves the effective values for the active profile.
func (cfg *Config) Settings() Settings {
	return Settings{
		Endpoint:       strings.TrimSpace(viper.GetString("endpoint")),
		Token:          strings.TrimSpace(viper.GetString("token")),
		DefaultCount:   viper.GetInt("default_count"),
		DefaultDepth:   viper.GetInt("default_depth"),
		RequestTimeout: viper.GetDuration("request_timeout"),
		RatePerSecond:  viper.GetFloat64("rate_per_second"),
		Export: ExportConfig{
			S3Region:    viper.GetString("export.s3_region"),
			S3Endpoint:  viper.GetString("export.s3_endpoint"),
			S3AccessKey: viper.GetString("export.s3_access_key"),
			S3SecretKey: viper.GetString("export.s3_secret_key"),
		},
	}
}

func (cfg *Config) ActiveProfile() (*Profile, error) {
	if cfg.active != nil {
		return cfg.active, nil
	}

	if cfg.CurrentProfile == "" {
		return nil, fmt.Errorf("no profile is currently selected")
	}

	if err := cfg.setActiveProfile(cfg.CurrentProfile); err != nil {
		return nil, err
	}

	return cfg.active, nil
}

func (cfg *Config) MustProfile() *Profile {
	p, err := cfg.ActiveProfile()
	if err != nil {
		panic(err)
	}
	return p
}

func (cfg *Config) ProfileNames() []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActivateProfile selects name for the current run without saving it.
func (cfg *Config) ActivateProfile(name string) error {
	return cfg.setActiveProfile(name)
}

func (cfg *Config) SwitchProfile(name string) error {
	if err := cfg.setActiveProfile(name); err != nil {
		return err
	}
	return cfg.Save()
}

func (cfg *Config) AddProfile(name string, p *Profile, makeCurrent bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if _, exists := cfg.Profiles[name]; exists {
		return fmt.Errorf("profile %q already exists", name)
	}
	if p == nil {
		p = NewProfile()
	}
	p.ensureDefaults()
	if err := ValidateEndpoint(p.Endpoint); err != nil {
		return err
	}

	cfg.Profiles[name] = p
	if makeCurrent {
		if err := cfg.setActiveProfile(name); err != nil {
			return err
		}
	}

	return cfg.Save()
}

func (cfg *Config) RemoveProfile(name string) error {
	if _, ok := cfg.Profiles[name]; !ok {
		return fmt.Errorf("profile %q does not exist", name)
	}
	if name == cfg.CurrentProfile {
		return fmt.Errorf("cannot remove the active profile %q; switch to another profile first", name)
	}

	delete(cfg.Profiles, name)
	return cfg.Save()
}

func (cfg *Config) ChangeToken(token string) error {
	p, err := cfg.ActiveProfile()
	if err != nil {
		return err
	}

	p.Token = strings.TrimSpace(token)
	viper.SetDefault("token", p.Token)
	return cfg.Save()
}

// Set updates one of Keys on the active profile and saves the file.
func (cfg *Config) Set(key, value string) error {
	p, err := cfg.ActiveProfile()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case "endpoint":
		if err := ValidateEndpoint(value); err != nil {
			return err
		}
		p.Endpoint = value
	case "default_count", "default_depth":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		if key == "default_count" {
			p.DefaultCount = n
		} else {
			p.DefaultDepth = n
		}
	case "request_timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("request_timeout must be a positive duration such as 30s, got %q", value)
		}
		p.RequestTimeout = d
	case "rate_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("rate_per_second must be a number, got %q", value)
		}
		p.RatePerSecond = f
	case "export.s3_region":
		p.Export.S3Region = value
	case "export.s3_endpoint":
		p.Export.S3Endpoint = value
	case "export.s3_access_key":
		p.Export.S3AccessKey = value
	case "export.s3_secret_key":
		p.Export.S3SecretKey = value
	default:
		return fmt.Errorf("unknown config key %q. Valid keys: %s", key, strings.Join(Keys, ", "))
	}

	p.ensureDefaults()
	cfg.syncViperWithActiveProfile()
	return cfg.Save()
}

// Get returns the stored (not environment-overridden) value of a key.
func (p *Profile) Get(key string) (string, bool) {
	switch key {
	case "endpoint":
		return p.Endpoint, true
	case "default_count":
		return strconv.Itoa(p.DefaultCount), true
	case "default_depth":
		return strconv.Itoa(p.DefaultDepth), true
	case "request_timeout":
		return p.RequestTimeout.String(), true
	case "rate_per_second":
		return strconv.FormatFloat(p.RatePerSecond, 'f', -1, 64), true
	case "export.s3_region":
		return p.Export.S3Region, true
	case "export.s3_endpoint":
		return p.Export.S3Endpoint, true
	case "export.s3_access_key":
		return p.Export.S3AccessKey, true
	case "export.s3_secret_key":
		if p.Export.S3SecretKey == "" {
			return "", true
		}
		return "********", true
	default:
		return "", false
	}
}

func (cfg *Config) GetConfigPath() string {
	home := cfg.home
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return GetConfigPath(home)
}

func (cfg *Config) Save() error {
	p, err := cfg.ActiveProfile()
	if err != nil {
		return err
	}

	if err := ValidateEndpoint(p.Endpoint); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	// The file holds bearer tokens.
	return os.WriteFile(configPath, data, 0o600)
}
