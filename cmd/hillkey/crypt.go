// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillkey/hill"
	"github.com/katalvlaran/hillkey/internal/config"
	"github.com/katalvlaran/hillkey/modmatrix"
)

// errNoKeySource is returned when neither --key-label nor --entries names a key.
var errNoKeySource = errors.New("one of --key-label or --entries is required")

// cryptFlags are the key-selection flags shared by encrypt and decrypt.
type cryptFlags struct {
	keyLabel string
	entries  string
	text     string
}

// register adds the shared flags to cmd.
func (f *cryptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.keyLabel, "key-label", "", "load the key from the keystore")
	cmd.Flags().StringVar(&f.entries, "entries", "", "flat row-major key entry listing")
	cmd.Flags().StringVar(&f.text, "text", "", "text to transform (required)")
	cmd.Flags().Int("dimension", 0, "key size N for --entries (overrides config)")
	cmd.Flags().Int("modulus", 0, "residue ring size for --entries (overrides config)")
	_ = cmd.MarkFlagRequired("text")
	cmd.MarkFlagsMutuallyExclusive("key-label", "entries")
}

// resolveKey loads the key matrix from the keystore or parses it from the
// --entries listing.
func (f *cryptFlags) resolveKey(cmd *cobra.Command, cfg config.Config) (*modmatrix.Matrix, error) {
	switch {
	case f.keyLabel != "":
		store, err := openStore(cmd, cfg)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()

		return store.Get(cmd.Context(), f.keyLabel)
	case f.entries != "":
		return modmatrix.ParseEntries(cfg.Dimension, cfg.Modulus, f.entries)
	default:
		return nil, errNoKeySource
	}
}

// runCrypt resolves the key, builds the cipher, and transforms the text in
// the requested direction.
func runCrypt(cmd *cobra.Command, f *cryptFlags, encrypt bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	key, err := f.resolveKey(cmd, cfg)
	if err != nil {
		return err
	}

	cipher, err := hill.NewCipher(key)
	if err != nil {
		return fmt.Errorf("build cipher: %w", err)
	}

	alpha := hill.DefaultAlphabet()
	var out string
	if encrypt {
		out, err = cipher.EncryptString(alpha, f.text)
	} else {
		out, err = cipher.DecryptString(alpha, f.text)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}

// newEncryptCmd builds the `encrypt` subcommand.
func newEncryptCmd() *cobra.Command {
	f := &cryptFlags{}
	cmd := &cobra.Command{
		Use:   "encrypt --key-label mykey --text HELP",
		Short: "Encrypt text with a key matrix",
		Long: `Encrypt maps the text through the A–Z alphabet, multiplies each block by
the key matrix modulo 26, and prints the resulting ciphertext. Text shorter
than a whole number of blocks is zero-padded (with 'A').`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, f, true)
		},
	}
	f.register(cmd)

	return cmd
}

// newDecryptCmd builds the `decrypt` subcommand.
func newDecryptCmd() *cobra.Command {
	f := &cryptFlags{}
	cmd := &cobra.Command{
		Use:   "decrypt --key-label mykey --text HIAT",
		Short: "Decrypt text with a key matrix",
		Long: `Decrypt applies the inverse key block by block. Padding introduced during
encryption shows up as trailing 'A' symbols.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, f, false)
		},
	}
	f.register(cmd)

	return cmd
}
