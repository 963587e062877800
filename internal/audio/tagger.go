package audio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/bogem/id3v2"
)

// Tags holds the values written to one file. Empty fields are not written.
type Tags struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string

	// Track is "number/total", e.g. "01/17".
	Track string

	Year  string
	Genre string

	// Disc is "number/total", e.g. "1/3".
	Disc string
}

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/handiism/mixtape-organizer/internal/audio TagWriter,CoverEmbedder

// TagWriter replaces all tags of an MP3 file.
type TagWriter interface {
	// WriteTags deletes every existing tag of path, then writes the
	// non-empty values of tags.
	WriteTags(ctx context.Context, path string, tags Tags) error
}

// tagField ties a Tags value to its id3v2 command line option and frame.
type tagField struct {
	flag  string
	frame string
	value func(Tags) string
}

// tagFields is the fixed tag vocabulary in write order.
var tagFields = []tagField{
	{"-t", "TIT2", func(t Tags) string { return t.Title }},
	{"-a", "TPE1", func(t Tags) string { return t.Artist }},
	{"-A", "TALB", func(t Tags) string { return t.Album }},
	{"--TPE2", "TPE2", func(t Tags) string { return t.AlbumArtist }},
	{"-T", "TRCK", func(t Tags) string { return t.Track }},
	{"-y", "TDRC", func(t Tags) string { return t.Year }},
	{"-g", "TCON", func(t Tags) string { return t.Genre }},
	{"--TPOS", "TPOS", func(t Tags) string { return t.Disc }},
}

// CLITagger writes tags by running the id3v2 command line tool.
//
// Each WriteTags call runs two processes:
//
//	id3v2 --delete-all FILE
//	id3v2 -t TITLE -a ARTIST ... FILE
type CLITagger struct {
	binary string
	run    CommandRunner
}

// NewCLITagger creates a CLITagger. An empty binary means "id3v2" on PATH.
func NewCLITagger(binary string) *CLITagger {
	if binary == "" {
		binary = "id3v2"
	}
	return &CLITagger{binary: binary, run: ExecRunner}
}

// WithRunner replaces the process runner, mainly for tests.
func (t *CLITagger) WithRunner(run CommandRunner) *CLITagger {
	t.run = run
	return t
}

// WriteTags implements TagWriter.
func (t *CLITagger) WriteTags(ctx context.Context, path string, tags Tags) error {
	if out, err := t.run(ctx, t.binary, "--delete-all", path); err != nil {
		return &TagError{Path: path, Op: "delete", Err: err, Output: trimOutput(out)}
	}

	if out, err := t.run(ctx, t.binary, SetArgs(path, tags)...); err != nil {
		return &TagError{Path: path, Op: "write", Err: err, Output: trimOutput(out)}
	}
	return nil
}

// SetArgs returns the id3v2 arguments that write tags to path.
func SetArgs(path string, tags Tags) []string {
	var args []string
	for _, f := range tagFields {
		if v := f.value(tags); v != "" {
			args = append(args, f.flag, v)
		}
	}
	return append(args, path)
}

// Tagger writes ID3v2.4 tags with the id3v2 library, without any
// external tool.
//
// Example:
//
//	tagger := NewTagger()
//	err := tagger.WriteTags(ctx, "/music/1-01 Song.mp3", tags)
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// WriteTags implements TagWriter.
//
// Existing ID3v2 frames and a trailing ID3v1 block are removed before the
// new frames are written.
func (t *Tagger) WriteTags(ctx context.Context, path string, tags Tags) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := stripID3v1(path); err != nil {
		return &TagError{Path: path, Op: "delete", Err: err}
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return &TagError{Path: path, Op: "open", Err: err}
	}
	defer tag.Close()

	tag.DeleteAllFrames()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	for _, f := range tagFields {
		if v := f.value(tags); v != "" {
			tag.AddTextFrame(f.frame, id3v2.EncodingUTF8, v)
		}
	}

	if err := tag.Save(); err != nil {
		return &TagError{Path: path, Op: "save", Err: err}
	}
	return nil
}

// id3v1Size is the fixed length of an ID3v1 block at the end of a file.
const id3v1Size = 128

// stripID3v1 truncates a trailing ID3v1 block, if present.
func stripID3v1(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < id3v1Size {
		return nil
	}

	marker := make([]byte, 3)
	if _, err := f.ReadAt(marker, info.Size()-id3v1Size); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if !bytes.Equal(marker, []byte("TAG")) {
		return nil
	}
	return f.Truncate(info.Size() - id3v1Size)
}
