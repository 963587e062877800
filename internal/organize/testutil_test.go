package organize

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/handiism/mixtape-organizer/internal/config"
	"github.com/handiism/mixtape-organizer/internal/model"
)

// testSettings returns settings rooted in a fresh temp directory.
func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	root := t.TempDir()

	s := config.DefaultSettings()
	s.SourceRoot = filepath.Join(root, "extracted music")
	s.LibraryRoot = filepath.Join(root, "Music Library")
	s.CoverArtPath = filepath.Join(root, "cover_art.jpg")
	return s
}

func versionByKey(t *testing.T, s *config.Settings, key string) model.Version {
	t.Helper()
	for _, v := range model.Versions(s.Layout()) {
		if v.Key == key {
			return v
		}
	}
	t.Fatalf("unknown version %q", key)
	return model.Version{}
}

// fakeMP3 is enough for the tag libraries, which only look at tag blocks.
func fakeMP3() []byte {
	return append([]byte{0xff, 0xfb, 0x90, 0x64}, make([]byte, 1024)...)
}

func addFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), fakeMP3(), 0644))
	}
}

func addPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.Set(3, 3, color.RGBA{G: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

// recorder collects progress events.
type recorder struct {
	events []ProgressEvent
}

func (r *recorder) record(e ProgressEvent) {
	r.events = append(r.events, e)
}

func (r *recorder) count(level ProgressLevel) int {
	n := 0
	for _, e := range r.events {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (r *recorder) done() int {
	n := 0
	for _, e := range r.events {
		if e.TrackDone {
			n++
		}
	}
	return n
}
