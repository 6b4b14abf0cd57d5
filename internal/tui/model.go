package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusPending   = "pending"

	logTailLimit = 5
)

// VertexState represents the current state of a task vertex in the TUI.
type VertexState struct {
	ID               string
	ParentID         string
	Name             string
	Status           string // statusRunning, statusCompleted, statusFailed, statusPending
	IndentationLevel int
	Expanded         bool
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	pending   lipgloss.Style
	dim       lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, managing vertices, their logs,
// and tape updates.
type Model struct {
	tape        TapeSource
	vertices    []VertexState
	logs        map[string][]string
	width       int
	height      int
	spinner     spinner.Model
	styles      styles
	SelectedIdx int
	MinLogLevel domain.LogLevel
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:        tape,
		spinner:     s,
		logs:        make(map[string][]string),
		MinLogLevel: domain.LogLevelInfo,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
			dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgTapeUpdate:
		return m.handleTapeUpdate(msg)
	case MsgTapeEnded:
		return m, tea.Quit
	case MsgVertexStarted:
		return m.handleVertexStarted(msg)
	case MsgVertexCompleted:
		return m.handleVertexCompleted(msg)
	case MsgLogReceived:
		return m.handleLogReceived(msg)
	}
	return m, nil
}

// handleKeyMsg handles keyboard input: ctrl+c quits, j/k and the arrow keys
// move the selection, enter/space toggles the selected vertex's log pane,
// and +/- widen or narrow the minimum log level shown.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyDown:
		m.moveSelection(1)
		return m, nil
	case tea.KeyUp:
		m.moveSelection(-1)
		return m, nil
	case tea.KeyEnter:
		m.toggleSelected()
		return m, nil
	}

	switch msg.String() {
	case "j":
		m.moveSelection(1)
	case "k":
		m.moveSelection(-1)
	case " ":
		m.toggleSelected()
	case "+":
		m.adjustVerbosity(-4)
	case "-":
		m.adjustVerbosity(4)
	}
	return m, nil
}

func (m *Model) moveSelection(delta int) {
	if len(m.vertices) == 0 {
		return
	}
	n := len(m.vertices)
	m.SelectedIdx = ((m.SelectedIdx+delta)%n + n) % n
}

func (m *Model) toggleSelected() {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.vertices) {
		return
	}
	v := &m.vertices[m.SelectedIdx]
	v.Expanded = !v.Expanded
}

func (m *Model) adjustVerbosity(delta domain.LogLevel) {
	level := m.MinLogLevel + delta
	switch {
	case level < domain.LogLevelDebug:
		level = domain.LogLevelDebug
	case level > domain.LogLevelError:
		level = domain.LogLevelError
	}
	m.MinLogLevel = level
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleTapeUpdate handles tape update messages.
func (m *Model) handleTapeUpdate(msg MsgTapeUpdate) (tea.Model, tea.Cmd) {
	m.processVertexUpdates(msg.Update)
	return m, WaitForTape(m.tape)
}

// handleVertexStarted marks the named vertex running and brings its log pane
// into focus, collapsing every other vertex so the list stays readable.
func (m *Model) handleVertexStarted(msg MsgVertexStarted) (tea.Model, tea.Cmd) {
	for i := range m.vertices {
		m.vertices[i].Expanded = m.vertices[i].ID == msg.ID
	}
	return m, nil
}

// handleVertexCompleted records the vertex's terminal status. A failed
// vertex stays (or becomes) expanded so its error is visible without an
// extra keypress; a successful one collapses.
func (m *Model) handleVertexCompleted(msg MsgVertexCompleted) (tea.Model, tea.Cmd) {
	for i := range m.vertices {
		if m.vertices[i].ID != msg.ID {
			continue
		}
		if msg.Err != nil {
			m.vertices[i].Status = statusFailed
			m.vertices[i].Expanded = true
		} else {
			m.vertices[i].Status = statusCompleted
			m.vertices[i].Expanded = false
		}
	}
	return m, nil
}

// handleLogReceived appends a log line to its vertex's pane.
func (m *Model) handleLogReceived(msg MsgLogReceived) (tea.Model, tea.Cmd) {
	m.logs[msg.VertexID] = append(m.logs[msg.VertexID], msg.Text)
	return m, nil
}

// processVertexUpdates processes vertex updates from the tape.
func (m *Model) processVertexUpdates(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		m.updateOrAddVertex(v)
	}
}

// updateOrAddVertex updates an existing vertex or adds a new one.
func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	for i, existing := range m.vertices {
		if existing.ID == v.Id {
			m.updateVertexStatus(i, v)
			return
		}
	}
	// Vertex not found, add it
	m.vertices = append(m.vertices, VertexState{
		ID:     v.Id,
		Name:   v.Name,
		Status: statusRunning,
	})
}

// updateVertexStatus updates the status of an existing vertex.
func (m *Model) updateVertexStatus(index int, v *progrock.Vertex) {
	if v.Completed != nil {
		if v.Error != nil {
			m.vertices[index].Status = statusFailed
		} else {
			m.vertices[index].Status = statusCompleted
		}
	}
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	start := m.SelectedIdx - m.height/2
	if start < 0 {
		start = 0
	}

	for i := start; i < len(m.vertices) && i < start+m.height; i++ {
		v := m.vertices[i]

		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = "•"
			style = m.styles.pending
		}

		indent := strings.Repeat("  ", v.IndentationLevel)
		line := fmt.Sprintf("%s%s %s\n", indent, style.Render(icon), v.Name)
		s.WriteString(line)

		if v.Expanded {
			m.writeLogs(&s, indent, v.ID)
		}
	}

	return s.String()
}

// writeLogs renders the tail of a vertex's log buffer, filtered to
// MinLogLevel and above, indented one level deeper than the vertex line.
func (m *Model) writeLogs(s *strings.Builder, indent, vertexID string) {
	lines := m.logs[vertexID]
	if len(lines) > logTailLimit {
		lines = lines[len(lines)-logTailLimit:]
	}

	for _, line := range lines {
		if logLineLevel(line) < m.MinLogLevel {
			continue
		}
		s.WriteString(m.styles.dim.Render(indent+"    "+line) + "\n")
	}
}

// logLineLevel extracts the level tag a log line was formatted with
// (e.g. "[DEBUG] message"). Untagged lines default to info, so they are
// never hidden by raising the minimum verbosity above debug.
func logLineLevel(line string) domain.LogLevel {
	switch {
	case strings.HasPrefix(line, "[DEBUG]"):
		return domain.LogLevelDebug
	case strings.HasPrefix(line, "[WARN]"):
		return domain.LogLevelWarn
	case strings.HasPrefix(line, "[ERROR]"):
		return domain.LogLevelError
	default:
		return domain.LogLevelInfo
	}
}
