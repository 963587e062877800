package organize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/mixtape-organizer/internal/audio"
	"github.com/handiism/mixtape-organizer/internal/config"
	ioutils "github.com/handiism/mixtape-organizer/internal/io"
	"github.com/handiism/mixtape-organizer/internal/model"
	"github.com/handiism/mixtape-organizer/internal/naming"
)

// CreditsImage is the image shipped with the DJ Mix that serves as cover.
const CreditsImage = "Creditz+Contact info!.jpg"

// Deps are the collaborators that touch tags.
type Deps struct {
	Tagger   audio.TagWriter
	Embedder audio.CoverEmbedder
}

// NewDeps builds the collaborators for the configured backend.
func NewDeps(settings *config.Settings) Deps {
	if settings.Backend == config.BackendNative {
		return Deps{
			Tagger:   audio.NewTagger(),
			Embedder: audio.NewPictureEmbedder(),
		}
	}
	return Deps{
		Tagger:   audio.NewCLITagger(settings.ID3v2Path),
		Embedder: audio.NewFFmpegEmbedder(settings.FFmpegPath),
	}
}

// PlannedTrack is one file that will be organized.
type PlannedTrack struct {
	Source string
	Target string
	Info   model.TrackInfo
	Tags   audio.Tags
}

// VersionPlan lists what will happen to one version's files.
type VersionPlan struct {
	Version model.Version

	// Total is the number of mp3 files found in the source directory,
	// including the ones that will be skipped. It is the denominator of
	// every track tag in the version.
	Total int

	Tracks []PlannedTrack

	// Skipped holds the cleaned names that could not be parsed.
	Skipped []string

	// Missing is set when the source directory does not exist.
	Missing bool
}

// VersionSummary reports the outcome for one version.
type VersionSummary struct {
	Key         string
	Total       int
	Organized   int
	Skipped     int
	CoverFailed int
	Playlist    string
}

// Summary reports the outcome of a run.
type Summary struct {
	// CoverArt is the image staged as cover art, empty if none.
	CoverArt string

	Versions []VersionSummary
}

// Organized returns the number of tracks organized across all versions.
func (s *Summary) Organized() int {
	n := 0
	for _, v := range s.Versions {
		n += v.Organized
	}
	return n
}

// Organizer coordinates the reorganization.
type Organizer struct {
	settings *config.Settings
	versions []model.Version
	tagger   audio.TagWriter
	embedder audio.CoverEmbedder
	playlist *audio.PlaylistCreator

	onProgress func(ProgressEvent)
}

// New creates an Organizer. onProgress may be nil.
func New(settings *config.Settings, deps Deps, onProgress func(ProgressEvent)) *Organizer {
	return &Organizer{
		settings:   settings,
		versions:   model.Versions(settings.Layout()),
		tagger:     deps.Tagger,
		embedder:   deps.Embedder,
		playlist:   audio.NewPlaylistCreator(audio.ParsePlaylistFormat(settings.PlaylistFormat), settings.M3UExtended),
		onProgress: onProgress,
	}
}

// Versions returns the versions the organizer works on, in order.
func (o *Organizer) Versions() []model.Version {
	return append([]model.Version(nil), o.versions...)
}

// Plan lists and parses every version's files without changing anything.
func (o *Organizer) Plan(ctx context.Context) ([]VersionPlan, error) {
	plans := make([]VersionPlan, 0, len(o.versions))
	for _, v := range o.versions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, err := o.planVersion(v)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (o *Organizer) planVersion(v model.Version) (VersionPlan, error) {
	plan := VersionPlan{Version: v}

	files, err := ioutils.ListAudioFiles(v.SourceDir, model.AudioExt)
	if errors.Is(err, os.ErrNotExist) {
		plan.Missing = true
		return plan, nil
	}
	if err != nil {
		return plan, fmt.Errorf("list %s: %w", v.SourceDir, err)
	}

	plan.Total = len(files)

	for _, src := range files {
		name := naming.CleanFilename(filepath.Base(src))

		info, ok := naming.ExtractTrackInfo(name, v.AlbumArtist)
		if !ok || !info.Complete() {
			plan.Skipped = append(plan.Skipped, name)
			continue
		}

		plan.Tracks = append(plan.Tracks, PlannedTrack{
			Source: src,
			Target: filepath.Join(v.TargetDir, v.FileName(info)),
			Info:   info,
			Tags: audio.Tags{
				Title:       info.Title,
				Artist:      v.TagArtist(info),
				Album:       v.Album,
				AlbumArtist: v.AlbumArtist,
				Track:       model.TrackTag(info.Number, plan.Total),
				Year:        v.Year,
				Genre:       v.Genre,
				Disc:        v.DiscTag(),
			},
		})
	}

	return plan, nil
}

// Run organizes every version. It stops at the first failed copy or tag
// write and returns the summary so far along with the error.
func (o *Organizer) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	if err := ioutils.EnsureDir(o.settings.LibraryRoot); err != nil {
		return summary, fmt.Errorf("create library root: %w", err)
	}

	summary.CoverArt = o.stageCoverArt(ctx)

	plans, err := o.Plan(ctx)
	if err != nil {
		return summary, err
	}

	planned := 0
	for _, p := range plans {
		planned += len(p.Tracks)
	}
	o.progress(ProgressEvent{Message: fmt.Sprintf("Found %d tracks to organize", planned), Level: LevelInfo, Planned: planned})

	for _, plan := range plans {
		vs, err := o.runVersion(ctx, plan)
		summary.Versions = append(summary.Versions, vs)
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// stageCoverArt copies the cover image to the configured path and returns
// its source, or "" when none was found.
func (o *Organizer) stageCoverArt(ctx context.Context) string {
	credits := filepath.Join(o.settings.SourceRoot, model.DJMixDir, CreditsImage)

	dirs := make([]string, 0, len(o.versions))
	for _, v := range o.versions {
		dirs = append(dirs, v.SourceDir)
	}

	candidates := ioutils.FindCoverArt(credits, dirs)
	opts := ioutils.CoverOptions{
		ConvertToJPEG: o.settings.ConvertCoverArtToJPG,
		MaxSize:       o.settings.CoverArtMaxSize,
	}

	src, err := ioutils.StageCoverArt(ctx, candidates, o.settings.CoverArtPath, opts, func(src string, err error) {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Error copying cover art %s: %v", src, err), Level: LevelWarning})
	})
	if err != nil {
		o.progress(ProgressEvent{Message: fmt.Sprintf("No cover art staged: %v", err), Level: LevelWarning})
		return ""
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Using cover art: %s", src), Level: LevelInfo})
	return src
}

func (o *Organizer) runVersion(ctx context.Context, plan VersionPlan) (VersionSummary, error) {
	v := plan.Version
	vs := VersionSummary{Key: v.Key, Total: plan.Total, Skipped: len(plan.Skipped)}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Processing %s version...", v.Key), Level: LevelInfo, Version: v.Key})

	if err := ioutils.EnsureDir(v.TargetDir); err != nil {
		return vs, fmt.Errorf("%s: create target directory: %w", v.Key, err)
	}

	if plan.Missing {
		o.progress(ProgressEvent{
			Message: fmt.Sprintf("%s: %v", v.SourceDir, ErrSourceMissing),
			Level:   LevelWarning,
			Version: v.Key,
		})
	}
	for _, name := range plan.Skipped {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Couldn't extract info from %s, skipping...", name), Level: LevelWarning, Version: v.Key})
	}

	var entries []audio.PlaylistEntry
	for _, track := range plan.Tracks {
		if err := ctx.Err(); err != nil {
			return vs, err
		}

		embedded, err := o.organizeTrack(ctx, v, track)
		if err != nil {
			return vs, err
		}
		if !embedded {
			vs.CoverFailed++
		}
		vs.Organized++

		entries = append(entries, audio.PlaylistEntry{
			FileName: filepath.Base(track.Target),
			Artist:   track.Tags.Artist,
			Title:    track.Tags.Title,
		})
	}

	if o.settings.CreatePlaylist && len(entries) > 0 {
		vs.Playlist = o.writePlaylist(v, entries)
	}

	o.progress(ProgressEvent{
		Message: fmt.Sprintf("Finished %s: %d/%d tracks organized", v.Key, vs.Organized, vs.Total),
		Level:   LevelSuccess,
		Version: v.Key,
	})
	return vs, nil
}

// organizeTrack copies, tags and covers one file. The returned bool is
// false only when a cover embed was attempted and failed.
func (o *Organizer) organizeTrack(ctx context.Context, v model.Version, track PlannedTrack) (bool, error) {
	o.progress(ProgressEvent{Message: fmt.Sprintf("Copying %s to %s", track.Source, track.Target), Level: LevelVerbose, Version: v.Key})

	if err := ioutils.CopyFile(ctx, track.Source, track.Target); err != nil {
		return true, fmt.Errorf("%s: copy %s: %w", v.Key, track.Source, err)
	}

	if err := o.tagger.WriteTags(ctx, track.Target, track.Tags); err != nil {
		return true, fmt.Errorf("%s: %w", v.Key, err)
	}

	embedded := true
	if ioutils.Exists(o.settings.CoverArtPath) {
		if err := o.embedder.EmbedCover(ctx, track.Target, o.settings.CoverArtPath); err != nil {
			embedded = false
			o.progress(ProgressEvent{Message: fmt.Sprintf("Failed to add cover art to %s: %v", track.Target, err), Level: LevelWarning, Version: v.Key})
		} else {
			o.progress(ProgressEvent{Message: fmt.Sprintf("Added cover art to %s", track.Target), Level: LevelVerbose, Version: v.Key})
		}
	}

	o.progress(ProgressEvent{
		Message:   fmt.Sprintf("Organized: %s", filepath.Base(track.Target)),
		Level:     LevelVerbose,
		Version:   v.Key,
		TrackDone: true,
	})
	return embedded, nil
}

func (o *Organizer) writePlaylist(v model.Version, entries []audio.PlaylistEntry) string {
	path := filepath.Join(v.TargetDir, v.Album+o.playlist.Format().Extension())
	content := o.playlist.CreatePlaylist(v.Album, entries)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning, Version: v.Key})
		return ""
	}

	o.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", v.Album), Level: LevelSuccess, Version: v.Key})
	return path
}

func (o *Organizer) progress(event ProgressEvent) {
	if o.onProgress != nil {
		o.onProgress(event)
	}
}
