// ABOUTME: Bubbletea model for the event browser
// ABOUTME: Lists detected events, tracks the cursor and triggers playback
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/soundbites/pkg/soundbite"
)

// PlayFunc plays one event and blocks until it finishes
type PlayFunc func(index int) error

// Model represents the browser state
type Model struct {
	title  string
	report *soundbite.Report
	play   PlayFunc

	cursor  int
	offset  int
	playing int // -1 when idle
	status  string

	// Dimensions
	width  int
	height int
}

// PlayedMsg reports that playback of an event ended
type PlayedMsg struct {
	Index int
	Err   error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
	case PlayedMsg:
		m.playing = -1
		if msg.Err != nil {
			m.status = fmt.Sprintf("event %d: %v", msg.Index, msg.Err)
		} else {
			m.status = fmt.Sprintf("played event %d", msg.Index)
		}
	}

	return m, nil
}

// View renders the browser
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderEvents())
	b.WriteString(m.renderHelp())
	return b.String()
}

// Cursor returns the selected event index
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) renderHeader() string {
	f := m.report.Format
	return fmt.Sprintf(`┌─ SoundBites ─────────────────────────────────────────┐
│ File:   %-44s │
│ Format: %-44s │
│ Events: %-44d │
├──────────────────────────────────────────────────────┤
`, truncate(m.title, 44), truncate(fmt.Sprintf("%dHz %s %d-bit", f.SampleRate, channelName(f.Channels), f.BitDepth), 44), len(m.report.Ranges))
}

func (m Model) renderEvents() string {
	if len(m.report.Ranges) == 0 {
		return "│ No sound events found                                │\n"
	}

	var b strings.Builder
	end := m.offset + m.visibleRows()
	if end > len(m.report.Ranges) {
		end = len(m.report.Ranges)
	}
	for i := m.offset; i < end; i++ {
		r := m.report.Ranges[i]
		marker := " "
		if i == m.cursor {
			marker = ">"
		}
		icon := " "
		if i == m.playing {
			icon = "♪"
		}
		line := fmt.Sprintf("%s%s %5d  %8.3fs  %8.3fs  %7d fr", marker, icon, i,
			m.report.Seconds(r.Start), m.report.Seconds(r.End+1), r.Frames())
		fmt.Fprintf(&b, "│ %-52s │\n", truncate(line, 52))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	status := m.status
	if status == "" {
		status = "ready"
	}
	return fmt.Sprintf(`├──────────────────────────────────────────────────────┤
│ %-52s │
│ ↑/↓:Select  enter:Play  g/G:First/Last  q:Quit       │
└──────────────────────────────────────────────────────┘
`, truncate(status, 52))
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.report.Ranges)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if n > 0 {
			m.cursor = n - 1
		}
	case "enter", " ":
		if n == 0 || m.play == nil || m.playing >= 0 {
			return m, nil
		}
		m.playing = m.cursor
		m.status = fmt.Sprintf("playing event %d", m.cursor)
		return m, playCmd(m.play, m.cursor)
	}

	m.clampOffset()
	return m, nil
}

func playCmd(play PlayFunc, index int) tea.Cmd {
	return func() tea.Msg {
		return PlayedMsg{Index: index, Err: play(index)}
	}
}

// visibleRows is the terminal height minus the header and help boxes
func (m Model) visibleRows() int {
	rows := m.height - 9
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// Utility functions
func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
