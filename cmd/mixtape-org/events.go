package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/handiism/mixtape-organizer/internal/organize"
)

// progressReporter turns organizer events into log records. Outside
// verbose mode it also draws a bar counting organized tracks.
type progressReporter struct {
	logger  *slog.Logger
	out     io.Writer
	verbose bool
	bar     *progressbar.ProgressBar
}

func newProgressReporter(logger *slog.Logger, out io.Writer, verbose bool) *progressReporter {
	return &progressReporter{logger: logger, out: out, verbose: verbose}
}

func (r *progressReporter) handle(event organize.ProgressEvent) {
	if event.Planned > 0 && !r.verbose && r.bar == nil {
		r.bar = progressbar.NewOptions(event.Planned,
			progressbar.OptionSetWriter(r.out),
			progressbar.OptionSetDescription("Organizing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var attrs []any
	if event.Version != "" {
		attrs = append(attrs, "version", event.Version)
	}
	r.logger.Log(context.Background(), slogLevel(event.Level), event.Message, attrs...)

	if event.TrackDone && r.bar != nil {
		_ = r.bar.Add(1)
	}
}

// finish clears the bar, if one was drawn.
func (r *progressReporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

func slogLevel(level organize.ProgressLevel) slog.Level {
	switch level {
	case organize.LevelVerbose:
		return slog.LevelDebug
	case organize.LevelWarning:
		return slog.LevelWarn
	case organize.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
