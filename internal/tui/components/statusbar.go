package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status line: status text on the left,
// the active config path on the right.
type StatusBar struct {
	status     string
	configPath string
	running    bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetStatus updates the status text.
func (s *StatusBar) SetStatus(text string) {
	s.status = text
}

// Status returns the current status text.
func (s *StatusBar) Status() string {
	return s.status
}

// SetConfigPath updates the config path shown on the right.
func (s *StatusBar) SetConfigPath(path string) {
	s.configPath = path
}

// SetRunning toggles the running indicator.
func (s *StatusBar) SetRunning(v bool) {
	s.running = v
}

// Render renders the status bar at the given width.
func (s *StatusBar) Render(width int) string {
	leftText := s.status
	if s.running {
		leftText = "… " + leftText
	}
	left := lipgloss.NewStyle().Render(leftText)

	var right string
	if s.configPath != "" {
		right = lipgloss.NewStyle().Faint(true).Render("config: " + s.configPath)
	}

	// Ensure the right part is always visible; truncate left if needed
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW
	if right != "" {
		avail--
	}
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}
	if right == "" {
		return left
	}
	return left + " " + right
}
