package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors and styles for rendering.
type Theme struct {
	Name    string
	Title   lipgloss.Style
	Label   lipgloss.Style
	Status  lipgloss.Style
	Divider lipgloss.Style
	Hint    lipgloss.Style
}

func darkTheme() Theme {
	return Theme{
		Name:    "dark",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

func lightTheme() Theme {
	return Theme{
		Name:    "light",
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

// themeByName returns the requested theme; anything unrecognized falls
// back to dark.
func themeByName(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

// nextTheme cycles between the two built-in themes.
func nextTheme(t Theme) Theme {
	if t.Name == "dark" {
		return lightTheme()
	}
	return darkTheme()
}
