// Package tui provides a Bubble Tea terminal user interface for mixtape-organizer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/mixtape-organizer/internal/config"
	"github.com/handiism/mixtape-organizer/internal/organize"
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// msgs carries organizer events from the background run.
	msgs chan tea.Msg

	// Run progress
	planned int
	done    int
	version string
	summary *organize.Summary

	// Options
	playlist bool
	native   bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model. The settings are copied; the source
// directory can be edited before the run starts.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = settings.SourceRoot
	ti.SetValue(settings.SourceRoot)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	s := *settings
	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  &s,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		playlist:  s.CreatePlaylist,
		native:    s.Backend == config.BackendNative,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every organizer progress event.
	ProgressMsg struct {
		Event organize.ProgressEvent
	}

	// RunDoneMsg is sent when the organizer returns.
	RunDoneMsg struct {
		Summary *organize.Summary
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateOrganizing {
				// The run reports the cancellation through RunDoneMsg.
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				return m.start()
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
				return m, nil
			}

		case "ctrl+n":
			if m.state == StateInput {
				m.native = !m.native
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.planned = 0
				m.done = 0
				m.version = ""
				m.summary = nil
				m.msgs = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, m.progress.SetPercent(0)
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.handleEvent(msg.Event), m.waitForMsg())

	case RunDoneMsg:
		m.summary = msg.Summary
		switch {
		case msg.Err != nil && errors.Is(msg.Err, context.Canceled):
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleEvent records an organizer event and advances the progress bar.
func (m *Model) handleEvent(event organize.ProgressEvent) tea.Cmd {
	if event.Version != "" {
		m.version = event.Version
	}
	if event.Planned > 0 {
		m.planned = event.Planned
	}

	var cmd tea.Cmd
	if event.TrackDone {
		m.done++
		cmd = m.progress.SetPercent(m.percent())
	}

	// Filter verbose messages if not in verbose mode
	if event.Level == organize.LevelVerbose && !m.verbose {
		return cmd
	}
	m.logs = append(m.logs, LogEntry{
		Message: event.Message,
		Level:   event.Level,
	})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
	return cmd
}

func (m Model) percent() float64 {
	if m.planned == 0 {
		return 0
	}
	return float64(m.done) / float64(m.planned)
}

// start applies the chosen options and launches the organizer.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.settings.SourceRoot = strings.TrimSpace(m.textInput.Value())
	m.settings.CreatePlaylist = m.playlist
	m.settings.Backend = config.BackendCLI
	if m.native {
		m.settings.Backend = config.BackendNative
	}
	if err := m.settings.Validate(); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.textInput.Blur()
	m.state = StateOrganizing
	m.msgs = make(chan tea.Msg, 64)

	org := organize.New(m.settings, organize.NewDeps(m.settings), m.send)
	return m, tea.Batch(m.runOrganizer(org), m.waitForMsg(), m.spinner.Tick)
}

// send forwards an event to the UI unless the run was cancelled.
func (m Model) send(event organize.ProgressEvent) {
	select {
	case m.msgs <- ProgressMsg{Event: event}:
	case <-m.ctx.Done():
	}
}

// runOrganizer runs the organizer in the background. The final message
// is always delivered so the UI can leave the organizing state.
func (m Model) runOrganizer(org *organize.Organizer) tea.Cmd {
	ctx, msgs := m.ctx, m.msgs
	return func() tea.Msg {
		summary, err := org.Run(ctx)
		msgs <- RunDoneMsg{Summary: summary, Err: err}
		close(msgs)
		return nil
	}
}

// waitForMsg delivers the next message from the background run.
func (m Model) waitForMsg() tea.Cmd {
	msgs := m.msgs
	if msgs == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-msgs
		if !ok {
			return nil
		}
		return msg
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Chrono Trigger Mixtape Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sort the three mixtape versions into your music library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Extracted music directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create playlists (ctrl+p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Tag without id3v2/ffmpeg (ctrl+n)\n", checkbox(m.native)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+o)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Library: %s", m.settings.LibraryRoot)))
	b.WriteString("\n")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.version != "" {
		b.WriteString(subtitleStyle.Render("Organizing "))
		b.WriteString(versionStyle.Render(m.version))
	} else {
		b.WriteString(subtitleStyle.Render("Looking for tracks..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d/%d", m.done, m.planned)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(successStyle.Render("Organization complete!"))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.renderSummary()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Library: %s\n", m.settings.LibraryRoot)
	if m.summary == nil {
		return b.String()
	}

	if m.summary.CoverArt != "" {
		fmt.Fprintf(&b, "Cover art: %s\n", m.summary.CoverArt)
	} else {
		b.WriteString("Cover art: none found\n")
	}
	b.WriteString("\n")
	for _, v := range m.summary.Versions {
		line := fmt.Sprintf("%s: %d/%d tracks", v.Key, v.Organized, v.Total)
		if v.Skipped > 0 {
			line += fmt.Sprintf(", %d skipped", v.Skipped)
		}
		b.WriteString(versionStyle.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+p: playlist • ctrl+n: native tagging • ctrl+o: verbose • esc: quit"
	case StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
