package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bombe/internal/display"
	"bombe/internal/machine"
	"bombe/internal/search"
)

var decodeFlags struct {
	file     string
	scenario string
	group    bool
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decipher a task whose settings are all known",
	Long: `Decode reads a task (YAML or JSON, or an embedded scenario) whose rotors,
reflector, ring settings, starting positions and plugboard are all given, and
prints the plaintext. Use 'bombe break' when any setting is unknown.`,
	RunE: runDecode,
}

func init() {
	f := decodeCmd.Flags()
	f.StringVarP(&decodeFlags.file, "file", "f", "", "Task file (YAML or JSON)")
	f.StringVar(&decodeFlags.scenario, "scenario", "", "Embedded scenario name")
	f.BoolVar(&decodeFlags.group, "group", false, "Print output in groups of five letters")
}

func runDecode(cmd *cobra.Command, _ []string) error {
	task, err := loadTask(decodeFlags.file, decodeFlags.scenario)
	if err != nil {
		return err
	}
	mode, err := search.SelectMode(task)
	if err != nil {
		return err
	}
	if mode != search.ModeDirect {
		return fmt.Errorf("task leaves settings unknown (%s); run 'bombe break' instead", display.Mode(string(mode)))
	}
	m, err := machine.Build(task.Baseline())
	if err != nil {
		return err
	}
	out, err := m.Encode(task.Code)
	if err != nil {
		return err
	}
	if decodeFlags.group {
		out = display.Letters(out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
