package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"bombe/internal/display"
	"bombe/internal/format"
	"bombe/internal/logging"
	"bombe/internal/search"
)

var breakFlags struct {
	file      string
	scenario  string
	workers   int
	maxTrials int64
	timeout   time.Duration
	jsonOut   bool
}

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Recover unknown settings from a crib",
	Long: `Break reads a task whose unknown settings are null or missing and searches
every candidate until the decryption contains the crib. The search chosen
depends on what is unknown:

  starting_positions          every window combination
  reflector                   reflectors A, B and C
  rotors / ring_settings      restricted rotor, ring and reflector catalogs
  single-letter plugboard     every free partner letter
  reflector_rewired: N        every N swapped reflector wires, checked
                              against the crib catalog

Without --max-trials the result is identical for any --workers value.`,
	RunE: runBreak,
}

func init() {
	f := breakCmd.Flags()
	f.StringVarP(&breakFlags.file, "file", "f", "", "Task file (YAML or JSON)")
	f.StringVar(&breakFlags.scenario, "scenario", "", "Embedded scenario name")
	f.IntVar(&breakFlags.workers, "workers", runtime.NumCPU(), "Concurrent candidate testers (1 = sequential)")
	f.Int64Var(&breakFlags.maxTrials, "max-trials", 0, "Stop after this many candidates (0 = no limit)")
	f.DurationVar(&breakFlags.timeout, "timeout", 0, "Stop after this long (0 = no limit)")
	f.BoolVar(&breakFlags.jsonOut, "json", false, "Print the result as JSON")
}

func runBreak(cmd *cobra.Command, _ []string) error {
	task, err := loadTask(breakFlags.file, breakFlags.scenario)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if breakFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, breakFlags.timeout)
		defer cancel()
	}

	e := search.Engine{
		Workers:   breakFlags.workers,
		MaxTrials: breakFlags.maxTrials,
		Logger:    logging.New("search"),
	}
	res, err := e.Run(ctx, task)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if breakFlags.jsonOut {
		if err := writeJSON(out, res); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, format.ResultTable(res, tableMode()))
	}
	if !res.Found() {
		return fmt.Errorf("settings not recovered: %s", display.Outcome(string(res.Outcome)))
	}
	return nil
}
