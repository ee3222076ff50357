package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bombe/internal/format"
	"bombe/internal/scenarios"
	"bombe/internal/search"
)

var scenariosFlags struct {
	jsonOut bool
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the embedded sample intercepts",
	RunE:  runScenarios,
}

func init() {
	scenariosCmd.Flags().BoolVar(&scenariosFlags.jsonOut, "json", false, "Print the list as JSON")
}

type scenarioRow struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Crib        string `json:"crib"`
	Description string `json:"description,omitempty"`
}

func runScenarios(cmd *cobra.Command, _ []string) error {
	var rows []scenarioRow
	for _, name := range scenarios.List() {
		task, err := scenarios.LoadTask(name)
		if err != nil {
			return err
		}
		mode, err := search.SelectMode(task)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", name, err)
		}
		rows = append(rows, scenarioRow{Name: name, Mode: string(mode), Crib: task.Crib, Description: task.Description})
	}

	out := cmd.OutOrStdout()
	if scenariosFlags.jsonOut {
		return writeJSON(out, rows)
	}
	list := make([]format.Scenario, len(rows))
	for i, r := range rows {
		list[i] = format.Scenario{Name: r.Name, Mode: search.Mode(r.Mode), Crib: r.Crib, Description: r.Description}
	}
	fmt.Fprintln(out, format.ScenarioTable(list, tableMode()))
	return nil
}
