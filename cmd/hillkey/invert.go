// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillkey/modmatrix"
)

// newInvertCmd builds the `invert` subcommand: parse a key from its entry
// listing and print its modular inverse.
func newInvertCmd() *cobra.Command {
	var entries string

	cmd := &cobra.Command{
		Use:   "invert --entries 3,3,2,5",
		Short: "Invert a key matrix over the configured ring",
		Long: `Invert parses a flat, comma-separated, row-major entry listing (the format
generate prints) using the configured dimension and modulus, then prints the
determinant, its scalar inverse, and the inverse matrix. A key whose
determinant shares a factor with the modulus is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			key, err := modmatrix.ParseEntries(cfg.Dimension, cfg.Modulus, entries)
			if err != nil {
				return fmt.Errorf("parse key: %w", err)
			}

			det, err := modmatrix.Determinant(key)
			if err != nil {
				return err
			}

			inv, err := modmatrix.Inverse(key)
			if err != nil {
				if errors.Is(err, modmatrix.ErrNotInvertible) {
					return fmt.Errorf("key with det %d is not invertible mod %d: %w",
						det, cfg.Modulus, err)
				}

				return err
			}

			detInv, err := modmatrix.ScalarInverse(det, cfg.Modulus)
			if err != nil {
				return err
			}

			fmt.Printf("det:      %d\n", det)
			fmt.Printf("det⁻¹:    %d\n", detInv)
			fmt.Printf("inverse:  %s\n", inv.String())

			return nil
		},
	}

	cmd.Flags().StringVar(&entries, "entries", "", "flat row-major entry listing (required)")
	cmd.Flags().Int("dimension", 0, "key size N (overrides config)")
	cmd.Flags().Int("modulus", 0, "residue ring size (overrides config)")
	_ = cmd.MarkFlagRequired("entries")

	return cmd
}
