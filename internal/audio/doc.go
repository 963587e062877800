// Package audio writes ID3 metadata and cover art to MP3 files and
// generates playlists for organized albums.
//
// # Tagging
//
// TagWriter clears every existing tag of a file and writes the given
// values. Two implementations exist:
//
//	w := audio.NewCLITagger("id3v2") // shells out to the id3v2 tool
//	w := audio.NewTagger()           // writes frames with the id3v2 library
//
//	err := w.WriteTags(ctx, path, audio.Tags{Title: "Song", Track: "01/17"})
//
// # Cover Art
//
// CoverEmbedder attaches a front-cover picture:
//
//	e := audio.NewFFmpegEmbedder("ffmpeg") // remuxes through a temp file
//	e := audio.NewPictureEmbedder()        // adds an APIC frame in place
//
// A missing cover image is not an error; the call does nothing.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true)
//	content := creator.CreatePlaylist(album, entries)
package audio
