package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/runcmd/internal/config"
	"github.com/interpretive-systems/runcmd/internal/logging"
	"github.com/interpretive-systems/runcmd/internal/tui/components"
)

// Options configures the interactive program.
type Options struct {
	Theme      string
	Config     config.Config
	ConfigPath string
}

type focusArea int

const (
	focusExe focusArea = iota
	focusArgs
)

type model struct {
	theme   Theme
	cfg     config.Config
	cfgPath string
	state   viewState

	keys      keyMap
	help      help.Model
	statusBar *components.StatusBar

	width  int
	height int
	focus  focusArea

	overlay     overlayKind
	picker      filepicker.Model
	savePrompt  textinput.Model
	pendingSave config.Config

	running bool
}

func newModel(opts Options) model {
	return model{
		theme:     themeByName(opts.Theme),
		cfg:       opts.Config,
		cfgPath:   opts.ConfigPath,
		state:     newViewState(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		statusBar: components.NewStatusBar(),
	}
}

// Run instantiates and runs the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m model) Init() tea.Cmd {
	var startup tea.Cmd = func() tea.Msg { return reloadMsg{} }
	if m.cfgPath != "" {
		startup = loadConfigCmd(m.cfgPath)
	}
	return tea.Batch(textinput.Blink, startup)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeEditors()
		if m.overlay == overlayExePicker || m.overlay == overlayConfigPicker {
			m.picker.Height = pickerHeight(m.height)
		}
		return m, nil

	case setThemeMsg:
		m.theme = msg.theme
		return m, setStatus("set theme to " + msg.theme.Name)

	case setExeMsg:
		m.state.exe.SetValue(msg.path)
		return m, setStatus("selected " + msg.path)

	case statusMsg:
		m.state.status = msg.text
		return m, nil

	case reloadMsg:
		m.state.SetFromConfig(m.cfg)
		return m, nil

	case configLoadedMsg:
		if msg.err != nil {
			logging.Error("load config", msg.err)
			return m, setStatus(fmt.Sprintf("load error: %v", msg.err))
		}
		m.cfg.Merge(msg.cfg)
		m.cfgPath = msg.path
		m.state.SetFromConfig(m.cfg)
		return m, setStatus("loaded config " + msg.path)

	case configSavedMsg:
		if msg.err != nil {
			logging.Error("save config", msg.err)
			return m, setStatus(fmt.Sprintf("save error: %v", msg.err))
		}
		m.cfgPath = msg.path
		return m, setStatus("saved to " + msg.path)

	case processDoneMsg:
		m.running = false
		if msg.err != nil {
			logging.Error("run process", msg.err)
			return m, setStatus(msg.err.Error())
		}
		return m, setStatus(fmt.Sprintf("process finished with exit status %d", msg.code))
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusExe {
			m.focus = focusArgs
			m.state.exe.Blur()
			return m, m.state.args.Focus()
		}
		m.focus = focusExe
		m.state.args.Blur()
		return m, m.state.exe.Focus()

	case key.Matches(msg, m.keys.Theme):
		next := nextTheme(m.theme)
		return m, func() tea.Msg { return setThemeMsg{theme: next} }

	case key.Matches(msg, m.keys.Reload):
		return m, func() tea.Msg { return reloadMsg{} }

	case key.Matches(msg, m.keys.Run):
		cfg, err := m.state.ToConfig()
		if err != nil {
			logging.Error("convert state to config", err)
			return m, setStatus("could not parse arguments")
		}
		m.running = true
		return m, tea.Batch(setStatus("running "+cfg.Exe), runProcessCmd(cfg))

	case key.Matches(msg, m.keys.PickExe):
		m.overlay = overlayExePicker
		m.picker = newExePicker(m.state.exe.Value(), m.height)
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Load):
		m.overlay = overlayConfigPicker
		m.picker = newConfigPicker(m.cfgPath, m.height)
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Save):
		cfg, err := m.state.ToConfig()
		if err != nil {
			logging.Error("convert state to config", err)
			return m, setStatus("could not parse arguments")
		}
		m.pendingSave = cfg
		m.overlay = overlaySavePrompt
		m.savePrompt = newSavePrompt(m.cfgPath)
		return m, textinput.Blink
	}

	// Everything else belongs to the focused editor.
	var cmd tea.Cmd
	switch m.focus {
	case focusExe:
		m.state.exe, cmd = m.state.exe.Update(msg)
	case focusArgs:
		m.state.args, cmd = m.state.args.Update(msg)
	}
	return m, cmd
}

func (m model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		kind := m.overlay
		m.overlay = overlayNone
		switch kind {
		case overlayExePicker:
			return m, setStatus("no executable selected")
		case overlayConfigPicker:
			return m, setStatus("no config selected")
		default:
			return m, setStatus("no save path entered")
		}
	}

	switch m.overlay {
	case overlayExePicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.overlay = overlayNone
			if !utf8.ValidString(path) {
				return m, setStatus(fmt.Sprintf("%q is not valid text", path))
			}
			return m, func() tea.Msg { return setExeMsg{path: path} }
		}
		return m, cmd

	case overlayConfigPicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.overlay = overlayNone
			return m, loadConfigCmd(path)
		}
		if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
			return m, setStatus(filepath.Base(path) + " is not a config file")
		}
		return m, cmd

	case overlaySavePrompt:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
			path := strings.TrimSpace(m.savePrompt.Value())
			m.overlay = overlayNone
			if path == "" {
				return m, setStatus("no save path entered")
			}
			return m, saveConfigCmd(m.pendingSave, path)
		}
		var cmd tea.Cmd
		m.savePrompt, cmd = m.savePrompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	hr := m.theme.Divider.Render(strings.Repeat("─", m.width))

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Run Command"))
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')

	switch m.overlay {
	case overlayExePicker:
		b.WriteString(m.theme.Label.Render("Select executable (enter: choose, esc: cancel)"))
		b.WriteByte('\n')
		b.WriteString(m.picker.View())
	case overlayConfigPicker:
		b.WriteString(m.theme.Label.Render("Open config (enter: choose, esc: cancel)"))
		b.WriteByte('\n')
		b.WriteString(m.picker.View())
	case overlaySavePrompt:
		b.WriteString(m.theme.Label.Render("Save config to (enter: save, esc: cancel)"))
		b.WriteByte('\n')
		b.WriteString(m.savePrompt.View())
		b.WriteByte('\n')
	default:
		b.WriteString(m.theme.Label.Render("Executable"))
		b.WriteByte('\n')
		b.WriteString(m.state.exe.View())
		b.WriteByte('\n')
		b.WriteString(m.theme.Label.Render("Arguments"))
		b.WriteByte('\n')
		b.WriteString(m.state.args.View())
		b.WriteByte('\n')
	}

	b.WriteString(hr)
	b.WriteByte('\n')
	m.statusBar.SetStatus(m.state.status)
	m.statusBar.SetConfigPath(m.cfgPath)
	m.statusBar.SetRunning(m.running)
	b.WriteString(m.statusBar.Render(m.width))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *model) resizeEditors() {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	m.state.exe.Width = w
	m.state.args.SetWidth(w)

	h := m.height - 9
	if h < 3 {
		h = 3
	}
	m.state.args.SetHeight(h)
}
