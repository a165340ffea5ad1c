package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/runcmd/internal/config"
	"github.com/interpretive-systems/runcmd/internal/logging"
)

// loadConfigCmd reads a config file off the update loop's thread.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configLoadedMsg{cfg: cfg, path: path, err: err}
	}
}

// saveConfigCmd writes cfg to path. cfg is an owned snapshot; the caller
// must not retain references into it.
func saveConfigCmd(cfg config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{path: path, err: config.Save(cfg, path)}
	}
}

// runProcessCmd spawns the configured executable and waits for it to
// finish. The child's output is discarded; the UI owns the terminal.
func runProcessCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		logging.Infof("running %q with args %q", cfg.Exe, cfg.Arg)
		code, err := cfg.Run(nil, nil, nil)
		return processDoneMsg{code: code, err: err}
	}
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text}
	}
}
