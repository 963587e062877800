package model

import (
	"path/filepath"
	"testing"
)

func TestVersions_Order(t *testing.T) {
	versions := Versions(DefaultLayout())

	want := []string{KeyDJMix, KeyNoDJMix, KeyInstrumentals}
	if len(versions) != len(want) {
		t.Fatalf("got %d versions, want %d", len(versions), len(want))
	}
	for i, key := range want {
		if versions[i].Key != key {
			t.Errorf("versions[%d].Key = %q, want %q", i, versions[i].Key, key)
		}
	}
}

func TestVersions_Layout(t *testing.T) {
	layout := Layout{SourceRoot: "/src", LibraryRoot: "/lib"}
	versions := Versions(layout)

	tests := []struct {
		key    string
		source string
		target string
		disc   string
	}{
		{KeyDJMix, "/src/Chrono Trigger Mixtape", "/lib/Various Artists/Chrono Trigger Mixtape", "1/3"},
		{KeyNoDJMix, "/src/Chrono Trigger Mixtape (No DJ Version)", "/lib/Various Artists/Chrono Trigger Mixtape (No DJ Version)", "2/3"},
		{KeyInstrumentals, "/src/Chrono Trigger Mixtape (Instrumentals)", "/lib/Compromised/Chrono Trigger Mixtape (Instrumentals)", "3/3"},
	}

	for i, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := versions[i]
			if v.SourceDir != filepath.FromSlash(tt.source) {
				t.Errorf("SourceDir = %q, want %q", v.SourceDir, tt.source)
			}
			if v.TargetDir != filepath.FromSlash(tt.target) {
				t.Errorf("TargetDir = %q, want %q", v.TargetDir, tt.target)
			}
			if got := v.DiscTag(); got != tt.disc {
				t.Errorf("DiscTag() = %q, want %q", got, tt.disc)
			}
		})
	}
}

func TestVersions_ReturnsCopies(t *testing.T) {
	first := Versions(DefaultLayout())
	first[0].Album = "changed"

	second := Versions(DefaultLayout())
	if second[0].Album == "changed" {
		t.Error("Versions() should not share state between calls")
	}
}

func TestVersion_FileName(t *testing.T) {
	versions := Versions(DefaultLayout())
	djMix, instrumentals := versions[0], versions[2]

	tests := []struct {
		name    string
		version Version
		info    TrackInfo
		want    string
	}{
		{"with artist", djMix, TrackInfo{"01", "DJ Name", "Song Title"}, "1-01 DJ Name - Song Title.mp3"},
		{"album artist omitted", djMix, TrackInfo{"02", "Various Artists", "Outro"}, "1-02 Outro.mp3"},
		{"no artist", djMix, TrackInfo{"03", "", "Interlude"}, "1-03 Interlude.mp3"},
		{"instrumentals keep guest artist in name", instrumentals, TrackInfo{"04", "Guest", "Beat"}, "3-04 Guest - Beat.mp3"},
		{"instrumentals album artist omitted", instrumentals, TrackInfo{"05", "Compromised", "Beat"}, "3-05 Beat.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.FileName(tt.info); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersion_TagArtist(t *testing.T) {
	versions := Versions(DefaultLayout())

	tests := []struct {
		name    string
		version Version
		artist  string
		want    string
	}{
		{"dj mix keeps artist", versions[0], "DJ Name", "DJ Name"},
		{"dj mix absent artist", versions[0], "", "Various Artists"},
		{"no dj keeps artist", versions[1], "Chrono Trigger Mixtape", "Chrono Trigger Mixtape"},
		{"instrumentals forced", versions[2], "DJ Name", "Compromised"},
		{"instrumentals absent", versions[2], "", "Compromised"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.version.TagArtist(TrackInfo{Number: "01", Artist: tt.artist, Title: "x"})
			if got != tt.want {
				t.Errorf("TagArtist() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrackInfo_Complete(t *testing.T) {
	tests := []struct {
		info TrackInfo
		want bool
	}{
		{TrackInfo{Number: "01", Title: "Song"}, true},
		{TrackInfo{Number: "01"}, false},
		{TrackInfo{Title: "Song"}, false},
		{TrackInfo{}, false},
	}

	for _, tt := range tests {
		if got := tt.info.Complete(); got != tt.want {
			t.Errorf("%+v.Complete() = %v, want %v", tt.info, got, tt.want)
		}
	}
}

func TestTrackTag(t *testing.T) {
	if got := TrackTag("07", 17); got != "07/17" {
		t.Errorf("TrackTag() = %q, want %q", got, "07/17")
	}
}
