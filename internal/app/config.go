package app

import (
	"io"
	"os"

	"tmt/internal/config"
	"tmt/internal/gsettings"
	"tmt/internal/mutation"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Verbose prints every store command before it runs.
	Verbose bool

	// ConfigPath loads a single config file instead of the layered lookup.
	ConfigPath string

	// Request is the set of changes asked for on the command line.
	Request mutation.Request

	// Loaded tmt configuration, set by NewApplication
	TmtConfig *config.TmtConfig

	// Output streams and the store runner. Nil means stdout, stderr and the
	// gsettings binary.
	Stdout io.Writer
	Stderr io.Writer
	Runner gsettings.Runner
}

// NewConfig creates a new application configuration
func NewConfig(debug, verbose bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Verbose:    verbose,
		ConfigPath: configPath,
	}
}

func (c *Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

func (c *Config) runner() gsettings.Runner {
	if c.Runner == nil {
		return gsettings.ExecRunner{}
	}
	return c.Runner
}
