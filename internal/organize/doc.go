// Package organize drives the whole reorganization of the mixtape.
//
// # Organizer
//
// The Organizer runs every step in sequence:
//
//  1. Stage cover art (the credits image, else the first cover-like image)
//  2. For each version in order, list its mp3 files
//  3. Clean and parse each filename, skipping names that don't parse
//  4. Copy the file into the library under its new name
//  5. Rewrite its ID3 tags
//  6. Embed the staged cover art
//  7. Write a playlist per version (optional)
//
// # Basic Usage
//
//	settings := config.DefaultSettings()
//	org := organize.New(settings, organize.NewDeps(settings), func(e organize.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	summary, err := org.Run(ctx)
//
// Plan performs steps 2 and 3 only and touches nothing on disk.
//
// # Errors
//
// Unparseable filenames are skipped and cover art failures are reported
// as warnings. A failed copy or tag write stops the run.
package organize
