package constants

import "time"

const (
	Version        = `0.1.0`
	AppName        = `rnote`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.rnote/`
	EnvPrefix      = `RNOTE`

	DefaultProfile  = `default`
	DefaultEndpoint = `http://localhost:6474`

	// DefaultCount is the number of notes a search asks for when no --count is given.
	DefaultCount = 50

	// DefaultDepth of zero renders tag trees without a cutoff.
	DefaultDepth = 0

	DefaultRatePerSecond = 5.0
	DefaultRateBurst     = 5
)

const DefaultRequestTimeout = 30 * time.Second
