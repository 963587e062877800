// Package model defines the core data structures used throughout
// the mixtape organizer.
//
// # Version
//
// Version describes one of the three mixtape variants and the metadata
// profile its tracks are tagged with:
//
//	layout := model.DefaultLayout()
//	for _, v := range model.Versions(layout) {
//	    fmt.Println(v.Key, v.SourceDir, "->", v.TargetDir)
//	}
//
// # TrackInfo
//
// TrackInfo is the record parsed from one cleaned filename. A Version turns
// it into a library filename and the artist written to the tags:
//
//	info := model.TrackInfo{Number: "01", Artist: "DJ Name", Title: "Song"}
//	v.FileName(info)  // "1-01 DJ Name - Song.mp3"
//	v.TagArtist(info) // "DJ Name" (or the album artist for Instrumentals)
package model
