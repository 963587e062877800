package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/mixtape-organizer/internal/config"
	"github.com/handiism/mixtape-organizer/internal/model"
	"github.com/handiism/mixtape-organizer/internal/organize"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewModelCopiesSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Backend = config.BackendNative
	m := NewModel(settings)

	settings.LibraryRoot = "elsewhere"
	if m.settings.LibraryRoot != model.DefaultLibraryRoot {
		t.Errorf("LibraryRoot = %q, want %q", m.settings.LibraryRoot, model.DefaultLibraryRoot)
	}
	if !m.native {
		t.Error("native backend should be preselected")
	}
	if got := m.textInput.Value(); got != model.DefaultSourceRoot {
		t.Errorf("source input = %q, want %q", got, model.DefaultSourceRoot)
	}
}

func TestToggles(t *testing.T) {
	m := NewModel(config.DefaultSettings())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	if !m.playlist || !m.native || !m.verbose {
		t.Errorf("toggles = playlist:%v native:%v verbose:%v, want all on", m.playlist, m.native, m.verbose)
	}
	if got := m.textInput.Value(); got != model.DefaultSourceRoot {
		t.Errorf("toggle keys leaked into the input: %q", got)
	}
}

func TestProgressEvents(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateOrganizing

	m = update(t, m, ProgressMsg{Event: organize.ProgressEvent{Message: "Found 4 tracks to organize", Planned: 4}})
	m = update(t, m, ProgressMsg{Event: organize.ProgressEvent{
		Message:   "Organized: 1-01 Song.mp3",
		Level:     organize.LevelVerbose,
		Version:   model.KeyDJMix,
		TrackDone: true,
	}})

	if m.planned != 4 || m.done != 1 {
		t.Errorf("progress = %d/%d, want 1/4", m.done, m.planned)
	}
	if got := m.percent(); got != 0.25 {
		t.Errorf("percent() = %v, want 0.25", got)
	}
	if m.version != model.KeyDJMix {
		t.Errorf("version = %q, want %q", m.version, model.KeyDJMix)
	}
	if len(m.logs) != 1 {
		t.Fatalf("got %d logs, want 1 (verbose events hidden)", len(m.logs))
	}
	if !strings.Contains(m.View(), "Tracks: 1/4") {
		t.Error("view should show track progress")
	}
}

func TestLogsAreCapped(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.verbose = true

	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: organize.ProgressEvent{Message: "line", Level: organize.LevelVerbose}})
	}
	if len(m.logs) != maxLogs {
		t.Errorf("got %d logs, want %d", len(m.logs), maxLogs)
	}
}

func TestRunDone(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantState State
		wantView  string
	}{
		{"success", nil, StateComplete, "Organization complete!"},
		{"failure", errors.New("DJ Mix: tag write failed"), StateError, "DJ Mix: tag write failed"},
		{"cancelled", context.Canceled, StateError, "cancelled by user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(config.DefaultSettings())
			m.state = StateOrganizing

			summary := &organize.Summary{
				CoverArt: "cover.png",
				Versions: []organize.VersionSummary{{Key: model.KeyDJMix, Total: 3, Organized: 3}},
			}
			m = update(t, m, RunDoneMsg{Summary: summary, Err: tt.err})

			if m.state != tt.wantState {
				t.Errorf("state = %v, want %v", m.state, tt.wantState)
			}
			if view := m.View(); !strings.Contains(view, tt.wantView) {
				t.Errorf("view missing %q:\n%s", tt.wantView, view)
			}
		})
	}
}

func TestSummaryView(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m = update(t, m, RunDoneMsg{Summary: &organize.Summary{
		Versions: []organize.VersionSummary{{Key: model.KeyInstrumentals, Total: 5, Organized: 4, Skipped: 1}},
	}})

	view := m.View()
	for _, want := range []string{"Cover art: none found", "Instrumentals: 4/5 tracks, 1 skipped"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStartRejectsInvalidSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.CoverArtPath = ""
	m := NewModel(settings)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	var cfgErr *config.ConfigError
	if !errors.As(m.err, &cfgErr) {
		t.Errorf("err = %v, want *config.ConfigError", m.err)
	}
}

func TestResetAfterRun(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateComplete
	m.planned, m.done = 3, 3

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	if m.state != StateInput || m.planned != 0 || m.done != 0 {
		t.Errorf("after reset: state=%v progress=%d/%d", m.state, m.done, m.planned)
	}
}
