// Package config provides configuration management for the mixtape
// organizer.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from a TOML file with MIXTAPE_* environment overrides
//   - Saving settings back to TOML
//   - Validation
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads "extracted music", writes "Music Library"
//	// Tags with the id3v2 tool, embeds cover art with ffmpeg
//
// # Loading from File
//
//	settings, err := config.Load("mixtape.toml")
//	// A missing file yields the defaults plus environment overrides
//
// # Saving Settings
//
//	settings.Backend = config.BackendNative
//	err := settings.Save("mixtape.toml")
package config
