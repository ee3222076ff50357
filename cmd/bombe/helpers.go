package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bombe/internal/config"
	"bombe/internal/scenarios"
)

// loadTask reads a task from a file or an embedded scenario; exactly one
// must be named.
func loadTask(path, scenario string) (*config.Task, error) {
	switch {
	case path != "" && scenario != "":
		return nil, fmt.Errorf("use either --file or --scenario, not both")
	case path != "":
		return config.LoadTask(path)
	case scenario != "":
		return scenarios.LoadTask(scenario)
	}
	return nil, fmt.Errorf("a task is required: pass --file or --scenario (see 'bombe scenarios')")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// cleanText upper-cases text and drops whitespace so grouped intercepts
// can be pasted as-is.
func cleanText(parts []string) string {
	return strings.ToUpper(strings.Join(strings.Fields(strings.Join(parts, " ")), ""))
}
