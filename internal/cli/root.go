package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/runcmd/internal/config"
	"github.com/interpretive-systems/runcmd/internal/logging"
	"github.com/interpretive-systems/runcmd/internal/tui"
)

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		themeName  string
		configPath string
		logFile    string
		exe        string
		args       []string
		skip       bool
	)

	root := &cobra.Command{
		Use:          "runcmd",
		Short:        "Configure and launch an executable",
		Long:         "Runcmd: edit an executable path and argument list, persist them as TOML, and launch the command from a terminal UI.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Configure(logFile)

			if themeName != "light" && themeName != "dark" {
				return fmt.Errorf("unknown theme %q (expected light or dark)", themeName)
			}
			if skip {
				if configPath == "" {
					return errors.New("--skip requires --config")
				}
				return runHeadless(configPath)
			}

			return tui.Run(tui.Options{
				Theme:      themeName,
				Config:     config.Config{Exe: exe, Arg: args},
				ConfigPath: configPath,
			})
		},
	}

	root.Flags().StringVarP(&themeName, "theme", "t", "dark", "UI theme (light or dark)")
	root.Flags().StringVarP(&configPath, "config", "c", "", "load config from file")
	root.Flags().StringVarP(&exe, "exe", "e", "", "initial executable path")
	root.Flags().StringArrayVar(&args, "arg", nil, "initial argument (repeatable)")
	root.Flags().BoolVar(&skip, "skip", false, "load config and run without opening the UI")
	root.Flags().StringVar(&logFile, "log-file", "", "diagnostic log path (default runcmd.log)")

	root.MarkFlagsMutuallyExclusive("skip", "exe")
	root.MarkFlagsMutuallyExclusive("skip", "arg")
	root.MarkFlagsMutuallyExclusive("skip", "theme")

	return root
}

// runHeadless loads the config at path and runs it synchronously,
// propagating the child's exit status as our own. Any read, parse, or
// spawn failure is fatal here.
func runHeadless(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	code, err := cfg.Run(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
