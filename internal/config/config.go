// SPDX-License-Identifier: MIT

// Package config loads and persists the hillkey configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file,
// HILLKEY_* environment variables, command-line flags bound by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillkey/modmatrix"
)

// Config is the effective application configuration after all sources merge.
type Config struct {
	Dimension   int      `mapstructure:"dimension" yaml:"dimension"`       // key size N
	Modulus     int      `mapstructure:"modulus" yaml:"modulus"`           // residue ring
	MaxAttempts int      `mapstructure:"max_attempts" yaml:"max_attempts"` // generator retry budget
	Seed        int64    `mapstructure:"seed" yaml:"seed"`                 // 0 → time-seeded
	Database    Database `mapstructure:"database" yaml:"database"`
	Log         Log      `mapstructure:"log" yaml:"log"`
}

// Database holds the keystore connection settings.
type Database struct {
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// Log holds the logging settings.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"` // logrus level name
}

// Defaults returns the built-in configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"dimension":    3,
		"modulus":      26,
		"max_attempts": modmatrix.DefaultMaxAttempts,
		"seed":         int64(0),
		"database.dsn": defaultDSN(),
		"log.level":    "info",
	}
}

// defaultDSN places the key database next to the user config file, falling
// back to the working directory when no config home exists.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hillkey.db"
	}

	return filepath.Join(dir, "hillkey", "hillkey.db")
}

// Path returns the location of the user config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config directory: %w", err)
	}

	return filepath.Join(dir, "hillkey", "hillkey.yaml"), nil
}

// Load merges defaults, the YAML file, HILLKEY_* environment variables, and
// the command's flags into a Config. explicitFile, when non-empty, names a
// config file that takes precedence over the search path.
func Load(cmd *cobra.Command, explicitFile string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("hillkey")
	v.SetConfigType("yaml")
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	}
	if path, err := Path(); err == nil {
		v.AddConfigPath(filepath.Dir(path))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("config: read: %w", err)
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("hillkey")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: unmarshal: %w", err)
	}

	return c, nil
}

// Write persists c as YAML at the user config path and returns that path.
func Write(c Config) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("config: create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}

	return path, nil
}
