package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/organize"
)

var playlistFlag bool

var organizeCmd = &cobra.Command{
	Use:   "organize",
	Short: "Copy, rename and tag all three versions",
	Long: `Copy every version into the library, then rename, retag and embed
cover art in the copies. The extracted files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runOrganize,
}

func init() {
	organizeCmd.Flags().BoolVar(&playlistFlag, "playlist", false, "Create a playlist per version")
	rootCmd.AddCommand(organizeCmd)
}

func runOrganize(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if playlistFlag {
		settings.CreatePlaylist = true
	}

	reporter := newProgressReporter(newLogger(cmd.ErrOrStderr(), settings), cmd.ErrOrStderr(), opts.verbose)
	org := organize.New(settings, organize.NewDeps(settings), reporter.handle)

	summary, err := org.Run(cmd.Context())
	reporter.finish()

	if summary != nil {
		printSummary(cmd.OutOrStdout(), summary, settings.LibraryRoot)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("organize cancelled: %w", err)
		}
		return fmt.Errorf("organize failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nOrganization complete!")
	fmt.Fprintf(cmd.OutOrStdout(), "Your music has been organized into: %s\n", settings.LibraryRoot)
	return nil
}

func printSummary(w io.Writer, s *organize.Summary, library string) {
	fmt.Fprintln(w)
	if s.CoverArt != "" {
		fmt.Fprintf(w, "  Cover art: %s\n", s.CoverArt)
	} else {
		fmt.Fprintln(w, "  Cover art: none found")
	}

	for _, v := range s.Versions {
		fmt.Fprintf(w, "  %-14s %d/%d organized", v.Key+":", v.Organized, v.Total)
		if v.Skipped > 0 {
			fmt.Fprintf(w, ", %d skipped", v.Skipped)
		}
		if v.CoverFailed > 0 {
			fmt.Fprintf(w, ", %d without cover", v.CoverFailed)
		}
		fmt.Fprintln(w)
		if v.Playlist != "" {
			fmt.Fprintf(w, "  %-14s %s\n", "", v.Playlist)
		}
	}
}
