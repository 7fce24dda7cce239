package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/sitstand/internal/store"
	"github.com/sadopc/sitstand/internal/tui"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	sitMinutes   uint32
	standMinutes uint32
	setup        bool
	logFile      string
}

func newRootCmd(run func(tui.Config, options) error) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "sitstand",
		Short:   "Alternate between sitting and standing",
		Long:    "sitstand shows a large countdown that alternates between a Sit and a Stand phase until you press q.",
		Version: version,
		Args:    cobra.NoArgs,

		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := tui.NewConfig(opts.sitMinutes, opts.standMinutes)
			if err != nil {
				return err
			}
			cfg.Setup = opts.setup

			// Past validation; anything failing now is not a usage problem.
			cmd.SilenceUsage = true
			return run(cfg, opts)
		},
	}

	defaults := tui.DefaultConfig()
	cmd.Flags().Uint32Var(&opts.sitMinutes, "sit-time", uint32(defaults.Sit.Minutes()), "Sit time in minutes")
	cmd.Flags().Uint32Var(&opts.standMinutes, "stand-time", uint32(defaults.Stand.Minutes()), "Stand time in minutes")
	cmd.Flags().BoolVar(&opts.setup, "setup", false, "Pick the durations in a form before starting")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write a debug log to this file")

	return cmd
}

func runTimer(cfg tui.Config, opts options) error {
	if opts.logFile != "" {
		f, err := tea.LogToFile(opts.logFile, "sitstand")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		// Anything on stderr would tear the full-screen view.
		log.SetOutput(io.Discard)
	}

	s, err := store.NewMemory()
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer s.Close()

	return tui.Run(s, cfg)
}

func main() {
	if err := newRootCmd(runTimer).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
