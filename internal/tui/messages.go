package tui

import (
	"github.com/interpretive-systems/runcmd/internal/config"
)

// setThemeMsg switches the active theme.
type setThemeMsg struct {
	theme Theme
}

// setExeMsg sets the executable path in the view state.
type setExeMsg struct {
	path string
}

// statusMsg replaces the status line text.
type statusMsg struct {
	text string
}

// reloadMsg resynchronizes the view state from the current config.
type reloadMsg struct{}

// configLoadedMsg carries a config read from disk.
type configLoadedMsg struct {
	cfg  config.Config
	path string
	err  error
}

// configSavedMsg reports the outcome of a save.
type configSavedMsg struct {
	path string
	err  error
}

// processDoneMsg reports the exit of a launched process.
type processDoneMsg struct {
	code int
	err  error
}
