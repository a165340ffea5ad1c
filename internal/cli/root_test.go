package cli

import (
	"path/filepath"
	"testing"
)

func TestSkipRequiresConfig(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--skip"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when --skip is given without --config")
	}
}

func TestSkipConflictsWithExe(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--skip", "--config", "x.toml", "--exe", "/bin/true"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected mutual exclusion error for --skip with --exe")
	}
}

func TestHeadlessUnreadableConfigFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	root := newRootCmd()
	root.SetArgs([]string{"--skip", "--config", missing})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unreadable config file")
	}
}

func TestSkipConflictsWithTheme(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--skip", "--config", "x.toml", "--theme", "light"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected mutual exclusion error for --skip with --theme")
	}
}
