package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"

	ioutils "github.com/handiism/mixtape-organizer/internal/io"
	"github.com/handiism/mixtape-organizer/internal/model"
)

// DefaultWorkers is used when Library is given a non-positive limit.
const DefaultWorkers = 4

// TrackReport is what was found in one organized file.
type TrackReport struct {
	Path        string
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Year        int
	Track       int
	TrackTotal  int
	Disc        int
	DiscTotal   int
	HasPicture  bool

	// Err is set when the tags could not be read.
	Err error
}

// OK reports whether the file has the tags every organized track carries.
func (r TrackReport) OK() bool {
	return r.Err == nil && r.Title != "" && r.Artist != "" && r.Album != "" && r.Track > 0
}

// VersionReport lists the files found in one version's target directory.
type VersionReport struct {
	Key     string
	Dir     string
	Missing bool
	Tracks  []TrackReport
}

// Problems returns the number of tracks that failed OK.
func (r VersionReport) Problems() int {
	n := 0
	for _, t := range r.Tracks {
		if !t.OK() {
			n++
		}
	}
	return n
}

// Library reads the tags of every organized track.
//
// Reports follow the order of versions and, within a version, file name
// order. A file that cannot be read is recorded in its TrackReport and
// does not stop the scan; only cancellation and listing failures are
// returned as errors.
//
// Example:
//
//	reports, err := verify.Library(ctx, model.Versions(layout), 4)
//	for _, r := range reports {
//	    fmt.Printf("%s: %d tracks, %d problems\n", r.Key, len(r.Tracks), r.Problems())
//	}
func Library(ctx context.Context, versions []model.Version, workers int) ([]VersionReport, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	reports := make([]VersionReport, len(versions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range versions {
		reports[i] = VersionReport{Key: v.Key, Dir: v.TargetDir}

		files, err := ioutils.ListAudioFiles(v.TargetDir, model.AudioExt)
		if errors.Is(err, os.ErrNotExist) {
			reports[i].Missing = true
			continue
		}
		if err != nil {
			// Let running reads finish before returning.
			_ = g.Wait()
			return nil, fmt.Errorf("list %s: %w", v.TargetDir, err)
		}

		tracks := make([]TrackReport, len(files))
		reports[i].Tracks = tracks

		for j, path := range files {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				tracks[j] = readTrack(path)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func readTrack(path string) TrackReport {
	r := TrackReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		r.Err = err
		return r
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		r.Err = fmt.Errorf("read tags %s: %w", filepath.Base(path), err)
		return r
	}

	r.Title = m.Title()
	r.Artist = m.Artist()
	r.Album = m.Album()
	r.AlbumArtist = m.AlbumArtist()
	r.Genre = m.Genre()
	r.Year = m.Year()
	r.Track, r.TrackTotal = m.Track()
	r.Disc, r.DiscTotal = m.Disc()
	r.HasPicture = m.Picture() != nil
	return r
}
