package audio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhowden/tag"
	"github.com/stretchr/testify/require"
)

// fakeMP3 returns bytes that start like an MPEG audio frame. The tag
// libraries only care about the leading and trailing tag blocks.
func fakeMP3() []byte {
	data := []byte{0xff, 0xfb, 0x90, 0x64}
	return append(data, make([]byte, 2048)...)
}

func writeMP3(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeJPEG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	path := filepath.Join(dir, "cover_art.jpg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func readTags(t *testing.T, path string) tag.Metadata {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	m, err := tag.ReadFrom(f)
	require.NoError(t, err)
	return m
}
