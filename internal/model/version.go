package model

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultSourceRoot is where the mixtape archives were extracted to.
	DefaultSourceRoot = "extracted music"

	// DefaultLibraryRoot is where the organized library is written.
	DefaultLibraryRoot = "Music Library"
)

// Layout anchors the fixed version subdirectories on disk.
type Layout struct {
	// SourceRoot contains one subdirectory per version.
	SourceRoot string

	// LibraryRoot receives one subtree per album artist.
	LibraryRoot string
}

// DefaultLayout returns the layout relative to the working directory.
func DefaultLayout() Layout {
	return Layout{
		SourceRoot:  DefaultSourceRoot,
		LibraryRoot: DefaultLibraryRoot,
	}
}

// Version describes one mixtape variant: where its files come from,
// where they go and the album-level tags they receive.
//
// Versions are values. Versions() builds fresh copies on every call so
// callers can never mutate the shared table.
type Version struct {
	// Key names the version ("DJ Mix", "No DJ Mix", "Instrumentals").
	Key string

	// SourceDir is the directory holding the extracted files.
	SourceDir string

	// TargetDir is the library directory the renamed files are copied to.
	TargetDir string

	Album       string
	AlbumArtist string
	Year        string
	Genre       string

	// DiscNumber and DiscTotal place the version inside the three-disc set.
	DiscNumber int
	DiscTotal  int

	// DiscPrefix is prepended to every filename, e.g. "1-".
	DiscPrefix string

	// ForceAlbumArtist tags every track with AlbumArtist regardless of
	// the artist found in the filename.
	ForceAlbumArtist bool
}

// Version keys in declaration order.
const (
	KeyDJMix         = "DJ Mix"
	KeyNoDJMix       = "No DJ Mix"
	KeyInstrumentals = "Instrumentals"
)

const (
	albumDJMix         = "Chrono Trigger Mixtape"
	albumNoDJMix       = "Chrono Trigger Mixtape (No DJ Version)"
	albumInstrumentals = "Chrono Trigger Mixtape (Instrumentals)"

	artistVarious     = "Various Artists"
	artistCompromised = "Compromised"

	releaseYear = "2005"
	discTotal   = 3
)

// DJMixDir is the source subdirectory of the DJ Mix version. The credits
// image shipped with the mixtape lives there.
const DJMixDir = albumDJMix

// Versions returns the three mixtape versions in processing order.
func Versions(layout Layout) []Version {
	return []Version{
		{
			Key:         KeyDJMix,
			SourceDir:   filepath.Join(layout.SourceRoot, albumDJMix),
			TargetDir:   filepath.Join(layout.LibraryRoot, artistVarious, albumDJMix),
			Album:       albumDJMix,
			AlbumArtist: artistVarious,
			Year:        releaseYear,
			Genre:       "Hip-Hop/Rap (DJ Mix)",
			DiscNumber:  1,
			DiscTotal:   discTotal,
			DiscPrefix:  "1-",
		},
		{
			Key:         KeyNoDJMix,
			SourceDir:   filepath.Join(layout.SourceRoot, albumNoDJMix),
			TargetDir:   filepath.Join(layout.LibraryRoot, artistVarious, albumNoDJMix),
			Album:       albumNoDJMix,
			AlbumArtist: artistVarious,
			Year:        releaseYear,
			Genre:       "Hip-Hop/Rap",
			DiscNumber:  2,
			DiscTotal:   discTotal,
			DiscPrefix:  "2-",
		},
		{
			Key:              KeyInstrumentals,
			SourceDir:        filepath.Join(layout.SourceRoot, albumInstrumentals),
			TargetDir:        filepath.Join(layout.LibraryRoot, artistCompromised, albumInstrumentals),
			Album:            albumInstrumentals,
			AlbumArtist:      artistCompromised,
			Year:             releaseYear,
			Genre:            "Hip-Hop/Instrumental",
			DiscNumber:       3,
			DiscTotal:        discTotal,
			DiscPrefix:       "3-",
			ForceAlbumArtist: true,
		},
	}
}

// DiscTag returns the TPOS value, e.g. "1/3".
func (v Version) DiscTag() string {
	return fmt.Sprintf("%d/%d", v.DiscNumber, v.DiscTotal)
}

// FileName builds the library filename for a track.
//
// The artist segment is dropped when the artist is absent or equals the
// version's album artist:
//
//	"1-01 DJ Name - Song Title.mp3"
//	"1-02 Outro.mp3"
func (v Version) FileName(info TrackInfo) string {
	if info.Artist != "" && info.Artist != v.AlbumArtist {
		return fmt.Sprintf("%s%s %s - %s%s", v.DiscPrefix, info.Number, info.Artist, info.Title, AudioExt)
	}
	return fmt.Sprintf("%s%s %s%s", v.DiscPrefix, info.Number, info.Title, AudioExt)
}

// TagArtist returns the artist written to the TPE1 frame.
func (v Version) TagArtist(info TrackInfo) string {
	if info.Artist == "" || v.ForceAlbumArtist {
		return v.AlbumArtist
	}
	return info.Artist
}
