// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillkey/modmatrix"
)

// newGenerateCmd builds the `generate` subcommand: draw a random invertible
// key matrix and optionally persist it under a label.
func newGenerateCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random invertible key matrix",
		Long: `Generate samples random matrices over the configured residue ring until one
is invertible (gcd of its determinant and the modulus is 1), then prints the
key as a flat, comma-separated, row-major entry listing. With --label the key
is also saved to the keystore.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			key, err := newGenerator(cfg).Generate(cfg.Dimension, cfg.Modulus)
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}

			det, err := modmatrix.Determinant(key)
			if err != nil {
				return err
			}

			fmt.Printf("dimension: %d\n", key.Dimension())
			fmt.Printf("modulus:   %d\n", key.Modulus())
			fmt.Printf("det:       %d\n", det)
			fmt.Printf("entries:   %s\n", key.String())

			if label == "" {
				return nil
			}

			store, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := store.Save(cmd.Context(), label, key)
			if err != nil {
				return fmt.Errorf("save key: %w", err)
			}
			logrus.WithFields(logrus.Fields{"label": label, "id": rec.ID}).Info("key saved")
			fmt.Printf("saved as:  %s\n", label)

			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "save the generated key under this label")
	cmd.Flags().Int("dimension", 0, "key size N (overrides config)")
	cmd.Flags().Int("modulus", 0, "residue ring size (overrides config)")
	cmd.Flags().Int("max_attempts", 0, "generator retry budget (overrides config)")
	cmd.Flags().Int64("seed", 0, "random seed; 0 uses a time-based source")

	return cmd
}
