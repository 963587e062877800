// Package naming parses the filenames the mixtape was distributed with.
//
// CleanFilename strips the website watermark and normalizes whitespace.
// ExtractTrackInfo turns the cleaned name into a model.TrackInfo:
//
//	name := naming.CleanFilename("01 DJ Name - Song [www.chronotriggermixtape.com].mp3")
//	info, ok := naming.ExtractTrackInfo(name, "Various Artists")
//	// info = {Number: "01", Artist: "DJ Name", Title: "Song"}, ok = true
//
// The intro and outro special cases match on literal substrings. Their
// order matters: any title containing "Outro" without an artist separator
// is read as the outro.
package naming
