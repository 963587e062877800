package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/bogem/id3v2"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	ioutils "github.com/handiism/mixtape-organizer/internal/io"
)

// CoverEmbedder attaches a front-cover picture to an audio file.
type CoverEmbedder interface {
	// EmbedCover embeds coverPath into audioPath. It does nothing when
	// coverPath does not exist. On failure audioPath is left as it was.
	EmbedCover(ctx context.Context, audioPath, coverPath string) error
}

const (
	coverTitle   = "Album cover"
	coverComment = "Cover (front)"
)

// TempPath returns the file an embed writes before replacing audioPath.
func TempPath(audioPath string) string {
	return audioPath + ".temp.mp3"
}

// FFmpegEmbedder remuxes the audio with the image as an attached picture
// stream. No audio is re-encoded.
//
// The equivalent command line is:
//
//	ffmpeg -i AUDIO -i COVER -map 0:0 -map 1:0 -c copy -id3v2_version 3 \
//	    -metadata:s:v "title=Album cover" -metadata:s:v "comment=Cover (front)" \
//	    AUDIO.temp.mp3 -y
//
// The temp file replaces the original only when ffmpeg succeeds.
type FFmpegEmbedder struct {
	ffmpegPath string
	run        func(ctx context.Context, cmd *ffmpeg.Stream) error
}

// NewFFmpegEmbedder creates an FFmpegEmbedder. An empty path means
// "ffmpeg" on PATH.
func NewFFmpegEmbedder(ffmpegPath string) *FFmpegEmbedder {
	return &FFmpegEmbedder{
		ffmpegPath: ffmpegPath,
		run:        runStream,
	}
}

// waitDelay bounds how long a killed ffmpeg may keep its output pipes open.
const waitDelay = 2 * time.Second

// runStream runs the compiled command and kills it when ctx is done.
func runStream(ctx context.Context, stream *ffmpeg.Stream) error {
	cmd := stream.Compile()
	cmd.WaitDelay = waitDelay

	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = cmd.Process.Kill()
		case <-done:
		}
	}()

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// Command builds the ffmpeg invocation that writes the remuxed file to tmp.
func (e *FFmpegEmbedder) Command(audioPath, coverPath, tmp string) *ffmpeg.Stream {
	audio := ffmpeg.Input(audioPath).Get("0")
	cover := ffmpeg.Input(coverPath).Get("0")

	cmd := ffmpeg.Output([]*ffmpeg.Stream{audio, cover}, tmp, ffmpeg.KwArgs{
		"c":             "copy",
		"id3v2_version": "3",
		"metadata:s:v":  []string{"title=" + coverTitle, "comment=" + coverComment},
	}).OverWriteOutput()

	if e.ffmpegPath != "" {
		cmd = cmd.SetFfmpegPath(e.ffmpegPath)
	}
	return cmd
}

// EmbedCover implements CoverEmbedder.
func (e *FFmpegEmbedder) EmbedCover(ctx context.Context, audioPath, coverPath string) error {
	if !ioutils.Exists(coverPath) {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := TempPath(audioPath)

	var stdout, stderr bytes.Buffer
	cmd := e.Command(audioPath, coverPath, tmp).WithOutput(&stdout, &stderr)

	if err := e.run(ctx, cmd); err != nil {
		_ = os.Remove(tmp)
		return &RemuxError{Path: audioPath, Tool: "ffmpeg", Err: err, Stderr: lastLine(stderr.String())}
	}

	if err := os.Rename(tmp, audioPath); err != nil {
		_ = os.Remove(tmp)
		return &RemuxError{Path: audioPath, Tool: "ffmpeg", Err: err}
	}
	return nil
}

// lastLine keeps ffmpeg's final diagnostic line, which names the failure.
func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// PictureEmbedder adds an APIC frame with the id3v2 library.
//
// Any existing attached pictures are replaced. The library writes the new
// tag to a temporary file and renames it over the original.
type PictureEmbedder struct{}

// NewPictureEmbedder creates a new PictureEmbedder.
func NewPictureEmbedder() *PictureEmbedder {
	return &PictureEmbedder{}
}

// EmbedCover implements CoverEmbedder.
func (e *PictureEmbedder) EmbedCover(ctx context.Context, audioPath, coverPath string) error {
	artwork, err := os.ReadFile(coverPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &RemuxError{Path: audioPath, Tool: "id3v2", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tag, err := id3v2.Open(audioPath, id3v2.Options{Parse: true})
	if err != nil {
		return &RemuxError{Path: audioPath, Tool: "id3v2", Err: err}
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Attached picture"))
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    ioutils.MIMEType(artwork),
		PictureType: id3v2.PTFrontCover,
		Description: coverTitle,
		Picture:     artwork,
	})

	if err := tag.Save(); err != nil {
		return &RemuxError{Path: audioPath, Tool: "id3v2", Err: err}
	}
	return nil
}
