package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/tmt"
	projectConfigDir = ".tmt"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"
)

// Environment variables that override file configuration.
const (
	EnvDataDir    = "TMT_DATA_DIR"
	EnvGSettings  = "TMT_GSETTINGS"
	EnvLogLevel   = "TMT_LOG_LEVEL"
	EnvVerbose    = "TMT_VERBOSE"
	EnvFontFamily = "TMT_FONT_FAMILY"
)

// LoadConfig loads the tmt configuration by layering default, user and project
// settings, then applying environment overrides (.env file first, real
// environment last).
func LoadConfig() (TmtConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return TmtConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return TmtConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	// 4. Environment
	env, err := readEnvironment()
	if err != nil {
		return TmtConfig{}, err
	}
	return applyEnv(config, env)
}

// LoadConfigFromPath loads defaults plus a single explicit config file.
func LoadConfigFromPath(path string) (TmtConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return TmtConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	env, err := readEnvironment()
	if err != nil {
		return TmtConfig{}, err
	}
	return applyEnv(mergeConfigs(GetDefaultConfig(), fileConfig), env)
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

var getDotEnvPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, dotEnvFileName), nil
}

// loadConfigFromFile loads a TmtConfig from a YAML file.
func loadConfigFromFile(filePath string) (TmtConfig, error) {
	var config TmtConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TmtConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return TmtConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Empty overlay
// fields keep the base value.
func mergeConfigs(base, overlay TmtConfig) TmtConfig {
	merged := base

	if overlay.DataDir != "" {
		merged.DataDir = overlay.DataDir
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	merged.Verbose = base.Verbose || overlay.Verbose

	mergeString(&merged.GSettings.Binary, overlay.GSettings.Binary)
	mergeString(&merged.GSettings.ProfileListSchema, overlay.GSettings.ProfileListSchema)
	mergeString(&merged.GSettings.ProfileSchema, overlay.GSettings.ProfileSchema)
	mergeString(&merged.GSettings.ProfilePathPrefix, overlay.GSettings.ProfilePathPrefix)
	mergeString(&merged.GSettings.FontSchema, overlay.GSettings.FontSchema)
	mergeString(&merged.GSettings.FontKey, overlay.GSettings.FontKey)
	mergeString(&merged.Font.Family, overlay.Font.Family)

	d := overlay.Defaults
	mergeString(&merged.Defaults.Background, d.Background)
	mergeString(&merged.Defaults.Foreground, d.Foreground)
	if d.Transparent != nil {
		merged.Defaults.Transparent = d.Transparent
	}
	if d.TransparencyPercent != nil {
		merged.Defaults.TransparencyPercent = d.TransparencyPercent
	}
	if d.Rows != 0 {
		merged.Defaults.Rows = d.Rows
	}
	if d.Columns != 0 {
		merged.Defaults.Columns = d.Columns
	}
	if d.CellHeightScale != 0 {
		merged.Defaults.CellHeightScale = d.CellHeightScale
	}
	if d.CellWidthScale != 0 {
		merged.Defaults.CellWidthScale = d.CellWidthScale
	}

	if len(overlay.TrackedProperties) > 0 {
		merged.TrackedProperties = overlay.TrackedProperties
	}

	return merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// readEnvironment returns the TMT_* variables from the .env file in the
// working directory, overridden by the process environment.
func readEnvironment() (map[string]string, error) {
	env := make(map[string]string)

	if path, err := getDotEnvPath(); err == nil {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range values {
				if strings.HasPrefix(k, "TMT_") {
					env[k] = v
				}
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
	}

	for _, key := range []string{EnvDataDir, EnvGSettings, EnvLogLevel, EnvVerbose, EnvFontFamily} {
		if v, ok := osLookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func applyEnv(config TmtConfig, env map[string]string) (TmtConfig, error) {
	mergeString(&config.DataDir, env[EnvDataDir])
	mergeString(&config.GSettings.Binary, env[EnvGSettings])
	mergeString(&config.LogLevel, env[EnvLogLevel])
	mergeString(&config.Font.Family, env[EnvFontFamily])
	if v, ok := env[EnvVerbose]; ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return TmtConfig{}, fmt.Errorf("invalid %s value %q: %w", EnvVerbose, v, err)
		}
		config.Verbose = verbose
	}
	return config, nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
