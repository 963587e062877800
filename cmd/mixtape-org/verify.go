package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/mixtape-organizer/internal/model"
	"github.com/handiism/mixtape-organizer/internal/verify"
)

var verifyWorkers int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Read back the tags of the organized library",
	Args:  cobra.NoArgs,
	RunE:  runVerifyCmd,
}

func init() {
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", verify.DefaultWorkers, "Files read in parallel")
	rootCmd.AddCommand(verifyCmd)
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	reports, err := verify.Library(cmd.Context(), model.Versions(settings.Layout()), verifyWorkers)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	problems := printVerifyResult(cmd.OutOrStdout(), reports)
	if problems > 0 {
		return fmt.Errorf("%d problems found", problems)
	}
	return nil
}

func printVerifyResult(w io.Writer, reports []verify.VersionReport) int {
	problems := 0
	for _, r := range reports {
		if r.Missing {
			fmt.Fprintf(w, "%s: not organized (%s missing)\n", r.Key, r.Dir)
			continue
		}

		pictures := 0
		for _, t := range r.Tracks {
			if t.HasPicture {
				pictures++
			}
		}
		fmt.Fprintf(w, "%s: %d tracks, %d with cover art\n", r.Key, len(r.Tracks), pictures)

		for _, t := range r.Tracks {
			if t.OK() {
				continue
			}
			problems++
			if t.Err != nil {
				fmt.Fprintf(w, "  %s: %v\n", filepath.Base(t.Path), t.Err)
			} else {
				fmt.Fprintf(w, "  %s: incomplete tags\n", filepath.Base(t.Path))
			}
		}
	}
	return problems
}
