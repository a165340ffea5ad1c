package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/runcmd/internal/config"
	"github.com/interpretive-systems/runcmd/internal/logging"
)

func baseModelForTest(t *testing.T) model {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))

	m := newModel(Options{Theme: "dark"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model)
}

// step applies msg and then keeps re-delivering whatever the returned
// commands produce, mirroring the loop's effect-completion re-delivery.
// Batched commands are not unpacked.
func step(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		if _, isBatch := out.(tea.BatchMsg); isBatch {
			break
		}
		next, cmd = m.Update(out)
		m = next.(model)
	}
	return m
}

func TestConfigLoadedMergeKeepsNonEmptyFields(t *testing.T) {
	m := baseModelForTest(t)
	m.cfg = config.Config{Exe: "a", Arg: []string{"x"}}

	m = step(t, m, configLoadedMsg{cfg: config.Config{Exe: "", Arg: []string{"y"}}, path: "p.toml"})

	if m.cfg.Exe != "a" {
		t.Fatalf("exe overwritten by empty field: %q", m.cfg.Exe)
	}
	if len(m.cfg.Arg) != 1 || m.cfg.Arg[0] != "y" {
		t.Fatalf("arg = %v, want [y]", m.cfg.Arg)
	}
	if m.cfgPath != "p.toml" {
		t.Fatalf("config path = %q", m.cfgPath)
	}
	if m.state.status != "loaded config p.toml" {
		t.Fatalf("status = %q", m.state.status)
	}
	if got := m.state.exe.Value(); got != "a" {
		t.Fatalf("view not reloaded, exe field = %q", got)
	}
}

func TestConfigLoadErrorSetsStatus(t *testing.T) {
	m := baseModelForTest(t)
	m = step(t, m, configLoadedMsg{path: "p.toml", err: errFake})

	if !strings.Contains(m.state.status, "load error") {
		t.Fatalf("status = %q", m.state.status)
	}
}

func TestProcessDoneReportsExitStatus(t *testing.T) {
	m := baseModelForTest(t)
	m.running = true

	m = step(t, m, processDoneMsg{code: 3})

	if m.running {
		t.Fatal("running flag not cleared")
	}
	if m.state.status != "process finished with exit status 3" {
		t.Fatalf("status = %q", m.state.status)
	}
}

func TestProcessSpawnErrorReportsStatus(t *testing.T) {
	m := baseModelForTest(t)
	m = step(t, m, processDoneMsg{code: -1, err: errFake})

	if m.state.status == "" {
		t.Fatal("expected spawn error in status line")
	}
}

func TestRunWithMalformedArgumentsSetsStatus(t *testing.T) {
	m := baseModelForTest(t)
	m.state.args.SetValue(`"unterminated`)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.state.status != "could not parse arguments" {
		t.Fatalf("status = %q", m.state.status)
	}
	if m.running {
		t.Fatal("run dispatched despite tokenize failure")
	}
}

func TestReloadResyncsViewFromConfig(t *testing.T) {
	m := baseModelForTest(t)
	m.cfg = config.Config{Exe: "run.exe", Arg: []string{"--flag", "value with spaces"}}

	m = step(t, m, reloadMsg{})

	if got := m.state.exe.Value(); got != "run.exe" {
		t.Fatalf("exe field = %q", got)
	}
	cfg, err := m.state.ToConfig()
	if err != nil {
		t.Fatalf("to config after reload: %v", err)
	}
	if len(cfg.Arg) != 2 || cfg.Arg[1] != "value with spaces" {
		t.Fatalf("arg = %v", cfg.Arg)
	}
}

func TestThemeToggleEmitsStatus(t *testing.T) {
	m := baseModelForTest(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	if m.theme.Name != "light" {
		t.Fatalf("theme = %q, want light", m.theme.Name)
	}
	if m.state.status != "set theme to light" {
		t.Fatalf("status = %q", m.state.status)
	}
}

func TestEscQuits(t *testing.T) {
	m := baseModelForTest(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestSavePromptCancelSetsStatus(t *testing.T) {
	m := baseModelForTest(t)
	m.state.exe.SetValue("run.exe")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(model)
	if m.overlay != overlaySavePrompt {
		t.Fatalf("overlay = %d, want save prompt", m.overlay)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != overlayNone {
		t.Fatal("overlay not closed on esc")
	}
	if m.state.status != "no save path entered" {
		t.Fatalf("status = %q", m.state.status)
	}
}

func TestView_Render(t *testing.T) {
	m := baseModelForTest(t)
	m.cfg = config.Config{Exe: "run.exe", Arg: []string{"--flag"}}
	m = step(t, m, reloadMsg{})
	m = step(t, m, statusMsg{text: "ready"})

	plain := ansi.Strip(m.View())

	if !strings.Contains(plain, "Run Command") {
		t.Fatalf("missing title: %q", plain)
	}
	if !strings.Contains(plain, "Executable") || !strings.Contains(plain, "Arguments") {
		t.Fatalf("missing field labels: %q", plain)
	}
	if !strings.Contains(plain, "run.exe") {
		t.Fatalf("missing executable value: %q", plain)
	}
	if !strings.Contains(plain, "ready") {
		t.Fatalf("missing status line: %q", plain)
	}
}

var errFake = errors.New("fake failure")
