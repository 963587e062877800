package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/organize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what organize would do without changing anything",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	plans, err := organize.New(settings, organize.Deps{}, nil).Plan(cmd.Context())
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	printPlan(cmd.OutOrStdout(), plans, opts.verbose)
	return nil
}

func printPlan(w io.Writer, plans []organize.VersionPlan, showTags bool) {
	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(w)
		}
		v := p.Version
		fmt.Fprintf(w, "%s -> %s\n", v.SourceDir, v.TargetDir)

		if p.Missing {
			fmt.Fprintln(w, "  source directory not found")
			continue
		}
		fmt.Fprintf(w, "  %d of %d files will be organized\n", len(p.Tracks), p.Total)

		for _, t := range p.Tracks {
			fmt.Fprintf(w, "  %s\n    -> %s\n", filepath.Base(t.Source), filepath.Base(t.Target))
			if showTags {
				fmt.Fprintf(w, "       artist=%q title=%q track=%s disc=%s\n",
					t.Tags.Artist, t.Tags.Title, t.Tags.Track, t.Tags.Disc)
			}
		}
		for _, name := range p.Skipped {
			fmt.Fprintf(w, "  %s\n    skipped: no track number or title\n", name)
		}
	}
}
