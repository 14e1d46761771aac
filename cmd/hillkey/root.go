// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillkey/internal/config"
	"github.com/katalvlaran/hillkey/keystore"
	"github.com/katalvlaran/hillkey/modmatrix"
)

// cfgFile holds the --config flag value; empty means the default search path.
var cfgFile string

// newRootCmd creates and configures the root cobra command. Building a fresh
// instance per call keeps tests isolated from package state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hillkey",
		Short: "Generate, invert, and apply modular matrix cipher keys",
		Long: `hillkey is a toolkit for Hill-cipher key matrices: it generates random
invertible keys over a residue ring, inverts user-supplied keys, encrypts and
decrypts text block by block, and keeps generated keys in a local SQLite
store.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return err
			}

			return setupLogging(cfg.Log.Level)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: user config dir)")

	cmd.AddCommand(
		newGenerateCmd(),
		newInvertCmd(),
		newEncryptCmd(),
		newDecryptCmd(),
		newKeysCmd(),
		newConfigCmd(),
	)

	return cmd
}

// setupLogging configures the global logrus logger from the config level.
func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)

	return nil
}

// loadConfig merges all configuration sources for the given command.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(cmd, cfgFile)
}

// openStore connects to the keystore named by the config.
func openStore(cmd *cobra.Command, cfg config.Config) (*keystore.Store, error) {
	return keystore.Open(cmd.Context(), cfg.Database.DSN)
}

// newGenerator builds a key generator from the config: an explicit seed
// yields reproducible keys, seed 0 defers to a time-based source.
func newGenerator(cfg config.Config) *modmatrix.Generator {
	opts := []modmatrix.GenOption{
		modmatrix.WithMaxAttempts(cfg.MaxAttempts),
		modmatrix.WithLogger(logrus.StandardLogger()),
	}
	if cfg.Seed != 0 {
		opts = append(opts, modmatrix.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	} else {
		opts = append(opts, modmatrix.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	}

	return modmatrix.NewGenerator(opts...)
}
