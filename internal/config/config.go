package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted executable+arguments record. Empty fields are
// omitted on save; unknown keys in a file are ignored on load.
type Config struct {
	Exe string   `toml:"exe,omitempty"`
	Arg []string `toml:"arg,omitempty"`
}

// Load reads and parses the TOML config at path.
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Save serializes c as TOML and writes it to path.
func Save(c Config, path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Merge overlays the non-empty fields of in onto c. Empty fields in a
// loaded file leave existing values untouched, so a partially specified
// file does not erase in-memory state.
func (c *Config) Merge(in Config) {
	if in.Exe != "" {
		c.Exe = in.Exe
	}
	if len(in.Arg) > 0 {
		c.Arg = in.Arg
	}
}

// Run spawns the configured executable with the configured arguments,
// inheriting the parent's environment and working directory, and waits
// for it to finish. The child's exit code is returned; a non-zero exit
// is not an error. The error path is reserved for spawn failures.
func (c Config) Run(stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(c.Exe, c.Arg...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("run %q: %w", c.Exe, err)
	}
	return 0, nil
}
