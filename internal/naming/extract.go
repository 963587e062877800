package naming

import (
	"regexp"
	"strings"

	"github.com/handiism/mixtape-organizer/internal/model"
)

// trackPattern captures the leading track number and the rest of the name.
var trackPattern = regexp.MustCompile(`^(\d+)\s+(.+)\.mp3$`)

const (
	artistSeparator = " - "

	introTitle  = "Presentiment (Intro)"
	outroTitle  = "Outro"
	mixtapeName = "Chrono Trigger Mixtape"
)

// ExtractTrackInfo parses a cleaned filename into its track number,
// artist and title.
//
// The name must start with a track number followed by whitespace and end
// in ".mp3"; otherwise the zero TrackInfo and false are returned and the
// file should be skipped.
//
// placeholderArtist is used for the intro and outro tracks, which carry no
// artist of their own. A remainder without " - " that is neither intro nor
// outro yields an empty artist and the whole remainder as title.
func ExtractTrackInfo(name, placeholderArtist string) (model.TrackInfo, bool) {
	m := trackPattern.FindStringSubmatch(name)
	if m == nil {
		return model.TrackInfo{}, false
	}

	number, rest := m[1], m[2]
	hasSeparator := strings.Contains(rest, artistSeparator)

	switch {
	case strings.Contains(rest, introTitle) && !hasSeparator:
		artist := placeholderArtist
		// The No DJ version names its intro after the mixtape itself.
		if strings.Contains(rest, mixtapeName+" -") {
			artist = mixtapeName
		}
		return model.TrackInfo{Number: number, Artist: artist, Title: introTitle}, true

	case strings.Contains(rest, outroTitle) && !hasSeparator:
		return model.TrackInfo{Number: number, Artist: placeholderArtist, Title: outroTitle}, true
	}

	artist, title, found := strings.Cut(rest, artistSeparator)
	if !found {
		return model.TrackInfo{Number: number, Title: rest}, true
	}

	return model.TrackInfo{
		Number: number,
		Artist: artist,
		Title:  stripWatermark(title),
	}, true
}
