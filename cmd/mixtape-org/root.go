package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/config"
)

var version = "dev"

// globalOptions holds the persistent flags. Empty values leave the
// configured setting alone.
type globalOptions struct {
	configPath string
	source     string
	library    string
	backend    string
	verbose    bool
}

var opts globalOptions

var rootCmd = &cobra.Command{
	Use:   "mixtape-org",
	Short: "Organize the Chrono Trigger Mixtape into a music library",
	Long: `mixtape-org - organize the Chrono Trigger Mixtape

Copies the DJ Mix, No DJ and Instrumentals versions from the extracted
download into a music library, renaming every file, rewriting its ID3
tags and embedding the cover art.

Tagging uses the id3v2 and ffmpeg tools by default; pass --backend native
to write tags without them.`,
	SilenceUsage: true,
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "mixtape.toml", "Path to config file")
	flags.StringVar(&opts.source, "source", "", "Directory holding the extracted versions (overrides config)")
	flags.StringVar(&opts.library, "library", "", "Music library directory (overrides config)")
	flags.StringVar(&opts.backend, "backend", "", `Tagging backend, "cli" or "native" (overrides config)`)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mixtape-org {{.Version}}\n")
}

// loadSettings reads the config file, then applies flag overrides.
func loadSettings(o globalOptions) (*config.Settings, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	applyOverrides(settings, o)
	return settings, settings.Validate()
}

func applyOverrides(s *config.Settings, o globalOptions) {
	if o.source != "" {
		s.SourceRoot = o.source
	}
	if o.library != "" {
		s.LibraryRoot = o.library
	}
	if o.backend != "" {
		s.Backend = o.backend
	}
	if o.verbose {
		s.LogLevel = "debug"
	}
}

// newLogger returns a text logger at the configured level.
func newLogger(w io.Writer, s *config.Settings) *slog.Logger {
	level, _ := config.ParseLogLevel(s.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
