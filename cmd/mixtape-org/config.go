package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(opts.configPath); err == nil && !forceInit {
		return fmt.Errorf("%s already exists, use --force to overwrite", opts.configPath)
	}

	settings := config.DefaultSettings()
	applyOverrides(settings, opts)
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := settings.Save(opts.configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.configPath)
	return nil
}
