// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the event browser
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/soundbites/pkg/soundbite"
)

// NewModel creates a browser over a scan report. play may be nil to disable
// playback.
func NewModel(title string, report *soundbite.Report, play PlayFunc) Model {
	if report == nil {
		report = &soundbite.Report{}
	}
	return Model{
		title:   title,
		report:  report,
		play:    play,
		playing: -1,
	}
}

// Run starts the browser and blocks until the user quits
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
