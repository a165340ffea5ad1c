package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
)

// overlayKind identifies the active modal overlay, if any. Terminal
// applications have no native file dialogs; each overlay fills that role
// and resolves to exactly one message re-entering the update loop.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayExePicker
	overlayConfigPicker
	overlaySavePrompt
)

// newExePicker builds a picker over any file type, seeded near the
// current executable.
func newExePicker(current string, height int) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = pickerStartDir(current)
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = pickerHeight(height)
	return fp
}

// newConfigPicker builds a picker restricted to config files.
func newConfigPicker(lastPath string, height int) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory = pickerStartDir(lastPath)
	fp.AllowedTypes = []string{".toml"}
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = pickerHeight(height)
	return fp
}

// newSavePrompt builds the path prompt used by the save dialog, seeded
// with the last known config path.
func newSavePrompt(lastPath string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "config.toml"
	if lastPath != "" {
		ti.SetValue(lastPath)
	}
	ti.Focus()
	return ti
}

// pickerStartDir resolves the directory a picker opens in: the parent of
// the seed path when that exists, the working directory otherwise.
func pickerStartDir(seed string) string {
	if seed != "" {
		dir := filepath.Dir(seed)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

func pickerHeight(windowHeight int) int {
	h := windowHeight - 7
	if h < 5 {
		h = 5
	}
	if h > 18 {
		h = 18
	}
	return h
}
