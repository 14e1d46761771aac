// SPDX-License-Identifier: MIT

package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// newKeysCmd is the root command for keystore management.
func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage stored key matrices (list, show, delete)",
	}
	cmd.AddCommand(newKeysListCmd(), newKeysShowCmd(), newKeysDeleteCmd(), newKeysExportCmd())

	return cmd
}

// newKeysListCmd lists all stored keys in table form.
func newKeysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			recs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No keys stored.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LABEL\tDIMENSION\tMODULUS\tCREATED")
			for _, rec := range recs {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
					rec.Label, rec.Dimension, rec.Modulus,
					rec.CreatedAt.Format(time.RFC3339))
			}

			return w.Flush()
		},
	}
}

// newKeysShowCmd prints one stored key in full, inverse included.
func newKeysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <label>",
		Short: "Show a stored key and its inverse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			key, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("label:     %s\n", args[0])
			fmt.Printf("dimension: %d\n", key.Dimension())
			fmt.Printf("modulus:   %d\n", key.Modulus())
			fmt.Printf("entries:   %s\n", key.String())

			return nil
		},
	}
}

// newKeysExportCmd ships one stored key's material blob, base64-encoded to
// stdout or raw msgpack to a file.
func newKeysExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <label>",
		Short: "Export a stored key's material (msgpack)",
		Long: `Export writes the key material exactly as stored: a msgpack blob of the
key's dimension, modulus, and row-major entries. Without --output the blob is
printed base64-encoded; with --output it is written raw to the named file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			rec, err := store.GetRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(base64.StdEncoding.EncodeToString(rec.Material))
				return nil
			}
			if err := os.WriteFile(output, rec.Material, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Printf("wrote %d bytes to %s\n", len(rec.Material), output)

			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "write raw msgpack to this file instead of stdout")

	return cmd
}

// newKeysDeleteCmd removes one stored key.
func newKeysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <label>",
		Short: "Delete a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted %q\n", args[0])

			return nil
		},
	}
}
