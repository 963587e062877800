package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/handiism/mixtape-organizer/internal/model"
)

// Tagging/embedding backends.
const (
	// BackendCLI shells out to the id3v2 and ffmpeg tools.
	BackendCLI = "cli"

	// BackendNative writes tags and pictures with the id3v2 library.
	BackendNative = "native"
)

// Settings holds all configuration options.
type Settings struct {
	// Paths
	SourceRoot   string `toml:"source_root" env:"MIXTAPE_SOURCE_ROOT"`
	LibraryRoot  string `toml:"library_root" env:"MIXTAPE_LIBRARY_ROOT"`
	CoverArtPath string `toml:"cover_art_path" env:"MIXTAPE_COVER_ART_PATH"`

	// Tools
	Backend    string `toml:"backend" env:"MIXTAPE_BACKEND"` // cli, native
	ID3v2Path  string `toml:"id3v2_path" env:"MIXTAPE_ID3V2_PATH"`
	FFmpegPath string `toml:"ffmpeg_path" env:"MIXTAPE_FFMPEG_PATH"`

	// Cover art settings
	ConvertCoverArtToJPG bool `toml:"convert_cover_art_to_jpg" env:"MIXTAPE_CONVERT_COVER_ART"`
	CoverArtMaxSize      int  `toml:"cover_art_max_size" env:"MIXTAPE_COVER_ART_MAX_SIZE"`

	// Playlist settings
	CreatePlaylist bool   `toml:"create_playlist" env:"MIXTAPE_CREATE_PLAYLIST"`
	PlaylistFormat string `toml:"playlist_format" env:"MIXTAPE_PLAYLIST_FORMAT"` // m3u, pls, wpl
	M3UExtended    bool   `toml:"m3u_extended" env:"MIXTAPE_M3U_EXTENDED"`

	LogLevel string `toml:"log_level" env:"MIXTAPE_LOG_LEVEL"` // debug, info, warn, error
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		SourceRoot:   model.DefaultSourceRoot,
		LibraryRoot:  model.DefaultLibraryRoot,
		CoverArtPath: "cover_art.jpg",

		Backend:    BackendCLI,
		ID3v2Path:  "id3v2",
		FFmpegPath: "ffmpeg",

		ConvertCoverArtToJPG: false,
		CoverArtMaxSize:      0,

		CreatePlaylist: false,
		PlaylistFormat: "m3u",
		M3UExtended:    true,

		LogLevel: "info",
	}
}

// Load reads settings from a TOML file and applies environment overrides.
//
// A missing file is not an error: the defaults are used, still subject
// to the environment. An empty path skips the file.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, settings); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			return settings, settings.Validate()
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cleanenv.ReadEnv(settings); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return settings, settings.Validate()
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks enumerated values and paths.
func (s *Settings) Validate() error {
	cfgErr := &ConfigError{}

	if s.SourceRoot == "" {
		cfgErr.Errors = append(cfgErr.Errors, "source_root is required")
	}
	if s.LibraryRoot == "" {
		cfgErr.Errors = append(cfgErr.Errors, "library_root is required")
	}
	if s.CoverArtPath == "" {
		cfgErr.Errors = append(cfgErr.Errors, "cover_art_path is required")
	}
	switch s.Backend {
	case BackendCLI, BackendNative:
	default:
		cfgErr.Errors = append(cfgErr.Errors, fmt.Sprintf("backend must be %q or %q, got %q", BackendCLI, BackendNative, s.Backend))
	}
	switch strings.ToLower(s.PlaylistFormat) {
	case "m3u", "pls", "wpl":
	default:
		cfgErr.Errors = append(cfgErr.Errors, fmt.Sprintf("unknown playlist_format %q", s.PlaylistFormat))
	}
	if s.CoverArtMaxSize < 0 {
		cfgErr.Errors = append(cfgErr.Errors, "cover_art_max_size must not be negative")
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		cfgErr.Errors = append(cfgErr.Errors, err.Error())
	}

	if cfgErr.HasErrors() {
		return cfgErr
	}
	return nil
}

// Layout returns the directory roots the versions are resolved against.
func (s *Settings) Layout() model.Layout {
	return model.Layout{
		SourceRoot:  s.SourceRoot,
		LibraryRoot: s.LibraryRoot,
	}
}

// ParseLogLevel maps a config value to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
	}
}
