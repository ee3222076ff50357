// Package scenarios embeds the sample intercepts used by the CLI, the tool
// server and the tests.
package scenarios

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"bombe/internal/config"
)

//go:embed *.yaml
var scenarioFS embed.FS

// Load reads a scenario by name from the embedded YAML files.
func Load(name string) (*config.File, error) {
	data, err := scenarioFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(List(), ", "), err)
	}
	f, err := config.Load(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}
	return f, nil
}

// LoadTask reads a scenario and normalizes it.
func LoadTask(name string) (*config.Task, error) {
	f, err := Load(name)
	if err != nil {
		return nil, err
	}
	t, err := config.Normalize(*f)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return t, nil
}

// List returns the names of all embedded scenarios, sorted.
func List() []string {
	entries, _ := scenarioFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}
