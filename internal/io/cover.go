package ioutils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// coverKeywords are the lowercase substrings that mark a file as cover art.
var coverKeywords = []string{"cover", "art", "creditz"}

// imageExts are the accepted cover art extensions.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsCoverArtName reports whether a filename looks like cover art.
func IsCoverArtName(name string) bool {
	if !imageExts[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	lower := strings.ToLower(name)
	for _, kw := range coverKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// FindCoverArt lists cover art candidates in priority order.
//
// preferred comes first when it exists. Then every directory in dirs is
// scanned in order for files matching IsCoverArtName; files within one
// directory are sorted by name. Unreadable directories are skipped.
func FindCoverArt(preferred string, dirs []string) []string {
	var candidates []string
	if preferred != "" && Exists(preferred) {
		candidates = append(candidates, preferred)
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		var found []string
		for _, entry := range entries {
			if entry.IsDir() || !IsCoverArtName(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if path == preferred {
				continue
			}
			found = append(found, path)
		}
		sort.Strings(found)
		candidates = append(candidates, found...)
	}

	return candidates
}

// CoverOptions controls how staged cover art is processed.
type CoverOptions struct {
	// ConvertToJPEG re-encodes the image as JPEG.
	ConvertToJPEG bool

	// MaxSize bounds width and height in pixels. Zero disables resizing.
	MaxSize int
}

// StageCoverArt copies the first candidate that can be staged to dst.
//
// Candidates are tried in order; a failed copy is reported through
// onError and the next candidate is tried. Returns the source that was
// staged, or ErrNoCoverArt when none could be.
//
// Image processing is best effort: when the image cannot be decoded the
// original bytes are kept.
func StageCoverArt(ctx context.Context, candidates []string, dst string, opts CoverOptions, onError func(src string, err error)) (string, error) {
	svc := NewImageService()

	for _, src := range candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if err := stageOne(ctx, svc, src, dst, opts); err != nil {
			if onError != nil {
				onError(src, err)
			}
			continue
		}
		return src, nil
	}

	return "", ErrNoCoverArt
}

func stageOne(ctx context.Context, svc *ImageService, src, dst string, opts CoverOptions) error {
	if dir := filepath.Dir(dst); dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	if !opts.ConvertToJPEG && opts.MaxSize <= 0 {
		return CopyFile(ctx, src, dst)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	processed := data
	if opts.MaxSize > 0 {
		if resized, err := svc.ResizeImage(ctx, processed, opts.MaxSize, opts.MaxSize); err == nil {
			processed = resized
		}
	} else if opts.ConvertToJPEG {
		if converted, err := svc.ConvertToJPEG(ctx, processed); err == nil {
			processed = converted
		}
	}

	if err := os.WriteFile(dst, processed, 0644); err != nil {
		return fmt.Errorf("write cover art: %w", err)
	}
	return nil
}
