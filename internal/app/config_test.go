package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"tmt/internal/gsettings"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		verbose    bool
		configPath string
	}{
		{name: "full configuration", debug: true, verbose: true, configPath: "/tmp/tmt.yaml"},
		{name: "minimal configuration"},
		{name: "verbose only", verbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.debug, tt.verbose, tt.configPath)

			assert.Equal(t, tt.debug, cfg.Debug)
			assert.Equal(t, tt.verbose, cfg.Verbose)
			assert.Equal(t, tt.configPath, cfg.ConfigPath)
			assert.Nil(t, cfg.TmtConfig, "TmtConfig should be nil before loading")
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, os.Stdout, cfg.stdout())
	assert.Equal(t, os.Stderr, cfg.stderr())
	assert.IsType(t, gsettings.ExecRunner{}, cfg.runner())

	var out bytes.Buffer
	cfg.Stdout = &out
	assert.Equal(t, &out, cfg.stdout())
}
