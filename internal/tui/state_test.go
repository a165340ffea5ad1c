package tui

import (
	"reflect"
	"testing"

	"github.com/kballard/go-shellquote"

	"github.com/interpretive-systems/runcmd/internal/config"
)

func TestJoinThenSplitIsIdentity(t *testing.T) {
	args := []string{"--flag", "value with spaces", "plain"}
	s := newViewState()
	s.SetFromConfig(config.Config{Exe: "run.exe", Arg: args})

	if got := s.exe.Value(); got != "run.exe" {
		t.Fatalf("exe = %q, want run.exe", got)
	}

	cfg, err := s.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if !reflect.DeepEqual(cfg.Arg, args) {
		t.Fatalf("arguments = %v, want %v", cfg.Arg, args)
	}
}

func TestSpacesAreQuotedOnReload(t *testing.T) {
	s := newViewState()
	s.SetFromConfig(config.Config{Exe: "run.exe", Arg: []string{"--flag", "value with spaces"}})

	raw := s.args.Value()
	// The embedded space forces quoting; splitting must recover both tokens.
	split, err := shellquote.Split(raw)
	if err != nil {
		t.Fatalf("split %q: %v", raw, err)
	}
	if len(split) != 2 || split[0] != "--flag" || split[1] != "value with spaces" {
		t.Fatalf("split %q = %v", raw, split)
	}
}

func TestToConfigUnterminatedQuoteFails(t *testing.T) {
	s := newViewState()
	s.exe.SetValue("run.exe")
	s.args.SetValue(`--flag "unterminated`)

	before := s.args.Value()
	if _, err := s.ToConfig(); err == nil {
		t.Fatal("expected tokenize error for unterminated quote")
	}
	if s.args.Value() != before {
		t.Fatal("argument buffer modified by failed conversion")
	}
}

func TestToConfigEmptyBuffer(t *testing.T) {
	s := newViewState()
	cfg, err := s.ToConfig()
	if err != nil {
		t.Fatalf("to config: %v", err)
	}
	if cfg.Exe != "" || len(cfg.Arg) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}
