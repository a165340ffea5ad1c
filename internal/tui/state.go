package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/kballard/go-shellquote"

	"github.com/interpretive-systems/runcmd/internal/config"
)

// viewState is the reloadable, user-editable mirror of a config: the
// executable path field, the raw argument buffer, and the status line.
// It is owned by the program model and mutated only in Update.
type viewState struct {
	exe    textinput.Model
	args   textarea.Model
	status string
}

func newViewState() viewState {
	exe := textinput.New()
	exe.Placeholder = "Executable..."
	exe.Prompt = ""
	exe.Focus()

	args := textarea.New()
	args.Placeholder = "Arguments..."
	args.ShowLineNumbers = false

	return viewState{exe: exe, args: args}
}

// ToConfig tokenizes the argument buffer with POSIX shell word-splitting
// rules and combines it with the executable field into a config. The
// view state is not modified.
func (s *viewState) ToConfig() (config.Config, error) {
	arg, err := shellquote.Split(s.args.Value())
	if err != nil {
		return config.Config{}, fmt.Errorf("parse arguments: %w", err)
	}
	return config.Config{Exe: s.exe.Value(), Arg: arg}, nil
}

// SetFromConfig resynchronizes the editable fields from cfg. This is the
// only path that writes view state from a config.
func (s *viewState) SetFromConfig(cfg config.Config) {
	s.exe.SetValue(cfg.Exe)
	s.args.SetValue(shellquote.Join(cfg.Arg...))
}
