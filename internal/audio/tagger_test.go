package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTags() Tags {
	return Tags{
		Title:       "Song Title",
		Artist:      "DJ Name",
		Album:       "Chrono Trigger Mixtape",
		AlbumArtist: "Various Artists",
		Track:       "01/3",
		Year:        "2005",
		Genre:       "Hip-Hop/Rap",
		Disc:        "1/3",
	}
}

func TestSetArgs(t *testing.T) {
	args := SetArgs("/lib/1-01 Song.mp3", fullTags())

	assert.Equal(t, []string{
		"-t", "Song Title",
		"-a", "DJ Name",
		"-A", "Chrono Trigger Mixtape",
		"--TPE2", "Various Artists",
		"-T", "01/3",
		"-y", "2005",
		"-g", "Hip-Hop/Rap",
		"--TPOS", "1/3",
		"/lib/1-01 Song.mp3",
	}, args)
}

func TestSetArgs_SkipsEmpty(t *testing.T) {
	args := SetArgs("f.mp3", Tags{Title: "Only", Disc: "2/3"})
	assert.Equal(t, []string{"-t", "Only", "--TPOS", "2/3", "f.mp3"}, args)
}

type recordedCall struct {
	name string
	args []string
}

func TestCLITagger_WriteTags(t *testing.T) {
	var calls []recordedCall
	tagger := NewCLITagger("").WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, recordedCall{name, args})
		return nil, nil
	})

	err := tagger.WriteTags(context.Background(), "f.mp3", Tags{Title: "T"})
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, recordedCall{"id3v2", []string{"--delete-all", "f.mp3"}}, calls[0])
	assert.Equal(t, recordedCall{"id3v2", []string{"-t", "T", "f.mp3"}}, calls[1])
}

func TestCLITagger_DeleteFailureStops(t *testing.T) {
	boom := errors.New("exit status 1")
	calls := 0
	tagger := NewCLITagger("/opt/bin/id3v2").WithRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		calls++
		return []byte("cannot open file\n"), boom
	})

	err := tagger.WriteTags(context.Background(), "f.mp3", fullTags())

	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "delete", tagErr.Op)
	assert.Equal(t, "cannot open file", tagErr.Output)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestCLITagger_MissingBinary(t *testing.T) {
	tagger := NewCLITagger("/nonexistent/id3v2-binary")

	err := tagger.WriteTags(context.Background(), "f.mp3", fullTags())

	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "delete", tagErr.Op)
}

func TestTagger_WriteTags(t *testing.T) {
	path := writeMP3(t, t.TempDir(), "song.mp3", fakeMP3())

	require.NoError(t, NewTagger().WriteTags(context.Background(), path, fullTags()))

	m := readTags(t, path)
	assert.Equal(t, "Song Title", m.Title())
	assert.Equal(t, "DJ Name", m.Artist())
	assert.Equal(t, "Chrono Trigger Mixtape", m.Album())
	assert.Equal(t, "Various Artists", m.AlbumArtist())
	assert.Equal(t, "Hip-Hop/Rap", m.Genre())
	assert.Equal(t, 2005, m.Year())

	track, total := m.Track()
	assert.Equal(t, 1, track)
	assert.Equal(t, 3, total)

	disc, discs := m.Disc()
	assert.Equal(t, 1, disc)
	assert.Equal(t, 3, discs)
}

func TestTagger_WriteTagsReplacesExisting(t *testing.T) {
	path := writeMP3(t, t.TempDir(), "song.mp3", fakeMP3())
	ctx := context.Background()
	tagger := NewTagger()

	require.NoError(t, tagger.WriteTags(ctx, path, fullTags()))
	require.NoError(t, tagger.WriteTags(ctx, path, Tags{Title: "Second"}))

	m := readTags(t, path)
	assert.Equal(t, "Second", m.Title())
	assert.Empty(t, m.Artist(), "old frames should be deleted")
	assert.Empty(t, m.Album())
}

func TestTagger_StripsID3v1(t *testing.T) {
	v1 := make([]byte, id3v1Size)
	copy(v1, "TAGold title")
	data := append(fakeMP3(), v1...)
	path := writeMP3(t, t.TempDir(), "song.mp3", data)

	require.NoError(t, NewTagger().WriteTags(context.Background(), path, Tags{Title: "New"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(got, []byte("TAGold title")))
	assert.True(t, strings.HasPrefix(string(got), "ID3"))
}

func TestTagger_MissingFile(t *testing.T) {
	err := NewTagger().WriteTags(context.Background(), "/nonexistent/song.mp3", fullTags())

	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
