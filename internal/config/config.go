package config

import (
	"os"
	"path/filepath"

	"github.com/evo-tools/fieldstrip/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyLogLevel selects the zap level (debug, info, warn, error).
	KeyLogLevel = "log_level"

	// DefaultLogLevel keeps successful runs silent.
	DefaultLogLevel = "warn"
)

// Dir returns the path to the config directory (~/.fieldstrip/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.fieldstrip/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// LogLevel returns the configured log level.
func LogLevel() string {
	if lvl := Get(KeyLogLevel); lvl != "" {
		return lvl
	}
	return DefaultLogLevel
}
