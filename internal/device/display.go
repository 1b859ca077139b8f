package device

import (
	"log/slog"
	"strings"
)

// LogDisplay writes every screen to a logger at debug level. The headless
// controller uses it in place of a panel.
type LogDisplay struct {
	logger *slog.Logger
}

// NewLogDisplay creates a display that logs through logger, or slog.Default
// when logger is nil.
func NewLogDisplay(logger *slog.Logger) *LogDisplay {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogDisplay{logger: logger}
}

func (d *LogDisplay) RenderList(title string, options []string, highlighted int) {
	selected := ""
	if highlighted >= 0 && highlighted < len(options) {
		selected = options[highlighted]
	}

	start, end := ListWindow(len(options), highlighted)
	d.logger.Debug("screen", "title", title, "options", strings.Join(options[start:end], "|"), "selected", selected)
}

func (d *LogDisplay) RenderDigits(title string, cells []Cell, highlighted int, bottom string) {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.Text)
	}

	d.logger.Debug("screen", "title", title, "value", b.String(), "cursor", highlighted, "message", bottom)
}

func (d *LogDisplay) RenderMain(view MainView) {
	d.logger.Debug("screen",
		"title", view.Title,
		"mode", view.Mode,
		"next_feed", view.NextFeed,
		"auto_feeds_done", view.AutoFeedsDone,
		"clock", view.Clock.String())
}

func (d *LogDisplay) Clear() {
	d.logger.Debug("screen cleared")
}

// VisibleRows is how many list options fit on the panel at once.
const VisibleRows = 4

// ListWindow returns the range [start, end) of options shown for a list of n
// options. The highlighted option stays on the bottom row once the list has
// scrolled.
func ListWindow(n, highlighted int) (start, end int) {
	if highlighted >= VisibleRows {
		start = highlighted - (VisibleRows - 1)
	}

	end = start + VisibleRows
	if end > n {
		end = n
	}

	return start, end
}
