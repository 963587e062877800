package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestFFmpegEmbedder_Command(t *testing.T) {
	e := NewFFmpegEmbedder("")
	args := strings.Join(e.Command("in.mp3", "cover.jpg", "in.mp3.temp.mp3").GetArgs(), " ")

	for _, want := range []string{
		"-i in.mp3 -i cover.jpg",
		"-map 0:0 -map 1:0",
		"-c copy",
		"-id3v2_version 3",
		"-metadata:s:v title=Album cover",
		"-metadata:s:v comment=Cover (front)",
		"in.mp3.temp.mp3",
		"-y",
	} {
		assert.Contains(t, args, want)
	}
}

func TestFFmpegEmbedder_MissingCoverIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", fakeMP3())

	e := NewFFmpegEmbedder("")
	e.run = func(context.Context, *ffmpeg.Stream) error {
		t.Fatal("ffmpeg should not run without a cover")
		return nil
	}

	assert.NoError(t, e.EmbedCover(context.Background(), path, filepath.Join(dir, "none.jpg")))
}

func TestFFmpegEmbedder_ReplacesOriginalOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", []byte("original"))
	cover := writeJPEG(t, dir)

	e := NewFFmpegEmbedder("")
	e.run = func(context.Context, *ffmpeg.Stream) error {
		return os.WriteFile(TempPath(path), []byte("remuxed"), 0644)
	}

	require.NoError(t, e.EmbedCover(context.Background(), path, cover))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "remuxed", string(got))
	assert.NoFileExists(t, TempPath(path))
}

func TestFFmpegEmbedder_FailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", []byte("original"))
	cover := writeJPEG(t, dir)

	// A stale partial output from an earlier crash must be cleaned up too.
	require.NoError(t, os.WriteFile(TempPath(path), []byte("partial"), 0644))

	e := NewFFmpegEmbedder(filepath.Join(dir, "no-such-ffmpeg"))
	err := e.EmbedCover(context.Background(), path, cover)

	var remuxErr *RemuxError
	require.ErrorAs(t, err, &remuxErr)
	assert.Equal(t, "ffmpeg", remuxErr.Tool)
	assert.Equal(t, path, remuxErr.Path)

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(got))
	assert.NoFileExists(t, TempPath(path))
}

func TestFFmpegEmbedder_StderrInError(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", []byte("original"))
	cover := writeJPEG(t, dir)

	e := NewFFmpegEmbedder("")
	e.run = func(context.Context, *ffmpeg.Stream) error { return errors.New("exit status 1") }

	err := e.EmbedCover(context.Background(), path, cover)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestPictureEmbedder_EmbedCover(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", fakeMP3())
	cover := writeJPEG(t, dir)
	ctx := context.Background()

	require.NoError(t, NewTagger().WriteTags(ctx, path, Tags{Title: "Song"}))
	require.NoError(t, NewPictureEmbedder().EmbedCover(ctx, path, cover))
	// Embedding twice must not stack pictures.
	require.NoError(t, NewPictureEmbedder().EmbedCover(ctx, path, cover))

	m := readTags(t, path)
	assert.Equal(t, "Song", m.Title(), "text frames survive the embed")

	pic := m.Picture()
	require.NotNil(t, pic)
	assert.Equal(t, "image/jpeg", pic.MIMEType)
	assert.NotEmpty(t, pic.Data)
}

func TestPictureEmbedder_MissingCoverIsNoop(t *testing.T) {
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", []byte("original"))

	require.NoError(t, NewPictureEmbedder().EmbedCover(context.Background(), path, filepath.Join(dir, "none.jpg")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestFFmpegEmbedder_CancelStopsRemux(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a shell script as ffmpeg")
	}
	dir := t.TempDir()
	path := writeMP3(t, dir, "song.mp3", []byte("original"))
	cover := writeJPEG(t, dir)

	slow := filepath.Join(dir, "slow-ffmpeg")
	require.NoError(t, os.WriteFile(slow, []byte("#!/bin/sh\nexec sleep 30\n"), 0755))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	err := NewFFmpegEmbedder(slow).EmbedCover(ctx, path, cover)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 10*time.Second)

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(got))
	assert.NoFileExists(t, TempPath(path))
}
