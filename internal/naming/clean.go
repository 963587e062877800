package naming

import (
	"regexp"
	"strings"
)

var (
	// bracketedWatermark matches " [www.chronotriggermixtape.com]".
	bracketedWatermark = regexp.MustCompile(`\s*\[www\.chronotriggermixtape\.com\]`)

	// bareWatermark matches " www.chronotriggermixtape.com".
	bareWatermark = regexp.MustCompile(`\s*www\.chronotriggermixtape\.com`)

	multiSpace = regexp.MustCompile(`\s+`)
)

// CleanFilename removes the website watermark from a filename and
// collapses runs of whitespace into single spaces.
//
// Example:
//
//	CleanFilename("Track [www.chronotriggermixtape.com].mp3") // "Track.mp3"
//	CleanFilename("  01   Song.mp3 ")                         // "01 Song.mp3"
func CleanFilename(name string) string {
	name = stripWatermark(name)
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

func stripWatermark(s string) string {
	s = bracketedWatermark.ReplaceAllString(s, "")
	return bareWatermark.ReplaceAllString(s, "")
}
