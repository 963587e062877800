// Package ioutils provides file system and image utilities for the
// organizer.
//
// # File Operations
//
//	// Copy a file, keeping its permissions and modification time
//	err := ioutils.CopyFile(ctx, "/src/01 Song.mp3", "/dst/1-01 Song.mp3")
//
//	// List the mp3 files of a source directory
//	files, err := ioutils.ListAudioFiles("/src/Chrono Trigger Mixtape", ".mp3")
//
// # Cover Art
//
// FindCoverArt returns candidate cover images in priority order and
// StageCoverArt copies the first usable one to a fixed location:
//
//	candidates := ioutils.FindCoverArt(creditsPath, sourceDirs)
//	staged, err := ioutils.StageCoverArt(ctx, candidates, "cover_art.jpg", opts, onError)
//
// # Image Processing
//
// ImageService converts and shrinks cover art before it is embedded:
//
//	svc := ioutils.NewImageService()
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
