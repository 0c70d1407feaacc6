// Package config loads bucketeer configuration via Viper.
// Values come from defaults, an optional config.toml, BUCKETEER_*
// environment variables and bound command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

// Configuration keys.
const (
	KeySettingsFile    = "settings.file"
	KeySettingsDir     = "settings.dir"
	KeySettingsBackend = "settings.backend"
	KeyAWSConfigFile   = "aws.config_file"
	KeyVerbose         = "verbose"
)

// Backend selects the settings storage implementation.
type Backend string

// Available backends.
const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

// Config captures all configuration knobs loaded via Viper.
type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Verbose  bool           `mapstructure:"verbose"`
}

// SettingsConfig controls where user settings are persisted.
type SettingsConfig struct {
	File    string  `mapstructure:"file"`
	Dir     string  `mapstructure:"dir"`
	Backend Backend `mapstructure:"backend"`
}

// AWSConfig points at the AWS shared config file.
type AWSConfig struct {
	ConfigFile string `mapstructure:"config_file"`
}

// New returns a Viper instance with defaults, search paths and
// environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySettingsFile, domain.DefaultSettingsFile)
	v.SetDefault(KeySettingsDir, DefaultDir())
	v.SetDefault(KeySettingsBackend, string(BackendFile))
	v.SetDefault(KeyAWSConfigFile, "")
	v.SetDefault(KeyVerbose, false)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if dir := DefaultDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("BUCKETEER") // e.g., BUCKETEER_SETTINGS_BACKEND=sqlite
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and decodes the result.
// If cfgFile is set it must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the decoded configuration.
func (c *Config) Validate() error {
	if !c.Settings.Backend.IsValid() {
		return fmt.Errorf("%w: unknown settings backend %q", domain.ErrInvalidInput, c.Settings.Backend)
	}
	if strings.TrimSpace(c.Settings.File) == "" {
		return fmt.Errorf("%w: settings file name is empty", domain.ErrInvalidInput)
	}
	return nil
}

// DefaultDir returns ~/.bucketeer, or "" if the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bucketeer")
}
