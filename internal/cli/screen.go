package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/feedr/internal/device"
)

const panelWidth = 28

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(panelWidth)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	cursorStyle       = lipgloss.NewStyle().Reverse(true)
	messageStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Screen is a device.Display that keeps the last frame as a string.
type Screen struct {
	view string
}

func NewScreen() *Screen {
	return &Screen{}
}

// View returns the last rendered frame, empty while blanked.
func (s *Screen) View() string {
	return s.view
}

func (s *Screen) RenderList(title string, options []string, highlighted int) {
	lines := []string{titleStyle.Render(title)}

	start, end := device.ListWindow(len(options), highlighted)
	for i := start; i < end; i++ {
		if i == highlighted {
			lines = append(lines, selectedItemStyle.Render("> "+options[i]))
			continue
		}
		lines = append(lines, itemStyle.Render(options[i]))
	}

	s.view = panelStyle.Render(strings.Join(lines, "\n"))
}

func (s *Screen) RenderDigits(title string, cells []device.Cell, highlighted int, bottom string) {
	var b strings.Builder
	for i, c := range cells {
		if i == highlighted && !c.Separator {
			b.WriteString(cursorStyle.Render(c.Text))
			continue
		}
		b.WriteString(c.Text)
	}

	lines := []string{titleStyle.Render(title), "", itemStyle.Render(b.String()), ""}
	if bottom != "" {
		lines = append(lines, messageStyle.Render(bottom))
	}

	s.view = panelStyle.Render(strings.Join(lines, "\n"))
}

func (s *Screen) RenderMain(view device.MainView) {
	lines := []string{
		titleStyle.Render(view.Title),
		"",
		fmt.Sprintf("Mode: %s", view.Mode),
		fmt.Sprintf("Auto feeds: %d", view.AutoFeedsDone),
		fmt.Sprintf("Next feed: %s", view.NextFeed),
		"",
		dimStyle.Render(view.Clock.String()),
	}

	s.view = panelStyle.Render(strings.Join(lines, "\n"))
}

func (s *Screen) Clear() {
	s.view = ""
}
