package model

import "fmt"

// AudioExt is the extension of the audio files the mixtape ships as.
const AudioExt = ".mp3"

// TrackInfo is the information parsed from one cleaned filename.
//
// An empty Artist means the filename carried no artist. A TrackInfo is
// only usable when both Number and Title are set.
type TrackInfo struct {
	// Number is the leading track number exactly as written ("01").
	Number string

	Artist string
	Title  string
}

// Complete reports whether the record has a track number and a title.
func (t TrackInfo) Complete() bool {
	return t.Number != "" && t.Title != ""
}

// TrackTag formats the TRCK value, e.g. "01/17".
func TrackTag(number string, total int) string {
	return fmt.Sprintf("%s/%d", number, total)
}
