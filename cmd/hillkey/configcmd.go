// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hillkey/internal/config"
)

// newConfigCmd is the root command for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hillkey configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigInitCmd writes the effective configuration to the user config
// path, so later runs start from an explicit file instead of defaults.
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the user config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := config.Write(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)

			return nil
		},
	}
}
