// Package config loads the collection configuration from config.yaml
// using Viper, creating the directory and a default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/curio/pkg/exhibit"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyLogLevel      = "log_level"
	cfgKeyReferenceYear = "reference_year"

	defaultLogLevel = exhibit.LogLevelInfo
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Curio configuration

# Registry logger level: debug, info, warn, or error.
log_level: info

# Fixed year for age derivation; 0 uses the wall clock.
reference_year: 0
`

// Load reads config.yaml from configDir and returns a validated Config.
// It creates the directory and a default config.yaml on first run. A
// missing config.yaml is not an error; defaults apply.
func Load(configDir string) (exhibit.Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return exhibit.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return exhibit.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyReferenceYear, 0)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return exhibit.Config{}, fmt.Errorf("read config: %w", err)
		}
		// Missing config.yaml is not an error; defaults apply.
	}

	cfg := exhibit.Config{
		LogLevel:      v.GetString(cfgKeyLogLevel),
		ReferenceYear: v.GetInt(cfgKeyReferenceYear),
	}
	if err := cfg.Validate(); err != nil {
		return exhibit.Config{}, err
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
