package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/menu"
)

var helpStyle = lipgloss.NewStyle().PaddingLeft(1).PaddingTop(1)

type tickMsg time.Time

// Model runs a navigator inside a bubbletea program. Key presses are queued
// as device events and consumed by the navigator on its next step.
type Model struct {
	nav    *menu.Navigator
	input  *device.QueueInput
	screen *Screen
	help   help.Model

	quitting bool
}

// NewModel creates the terminal host. The navigator must have been built
// with input and screen as its input and display.
func NewModel(nav *menu.Navigator, input *device.QueueInput, screen *Screen) Model {
	return Model{
		nav:    nav,
		input:  input,
		screen: screen,
		help:   help.New(),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true

			return m, tea.Quit
		case key.Matches(msg, keys.Cycle):
			m.input.Push(device.EventCycle)
		case key.Matches(msg, keys.Confirm):
			m.input.Push(device.EventConfirm)
		}

		return m, nil

	case tickMsg:
		if !m.nav.Step() {
			m.quitting = true

			return m, tea.Quit
		}

		return m, tick(m.nav.Tick())
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	return "\n" + m.screen.View() + "\n" + helpStyle.Render(m.help.View(keys)) + "\n"
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}
