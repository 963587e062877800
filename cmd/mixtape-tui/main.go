package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/config"
	"github.com/handiism/mixtape-organizer/internal/tui"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mixtape-tui",
		Short: "Organize the Chrono Trigger Mixtape interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return tui.Run(settings)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&configPath, "config", "mixtape.toml", "Path to config file")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
