package format

import (
	"fmt"
	"strings"

	"bombe/internal/display"
	"bombe/internal/machine"
	"bombe/internal/search"
)

// SettingsTable lists a complete machine configuration, one row per
// category, rotor lists leftmost first.
func SettingsTable(s machine.Settings, m Mode) string {
	tb := newSheet(m, "Setting", "Value")
	tb.row(display.Category("rotors"), strings.Join(s.Rotors, " "))
	tb.row(display.Category("reflector"), s.Reflector)
	tb.row(display.Category("ring_settings"), rings(s.Rings))
	tb.row(display.Category("starting_positions"), spaced(s.Positions))
	tb.row(display.Category("plugboard"), display.Pairs(s.Plugs))
	if len(s.ReflectorPairs) > 0 {
		tb.row(display.Category("reflector_wiring"), display.Pairs(s.ReflectorPairs))
	}
	tb.columns(wrapped(2, 42))
	return tb.String()
}

// ResultTable summarises a search run. Recovered settings follow the
// summary when the run succeeded.
func ResultTable(r *search.Result, m Mode) string {
	tb := newSheet(m, "Field", "Value")
	tb.row("Run", r.RunID)
	tb.row("Search", display.ModeWithCode(string(r.Mode)))
	tb.row("Outcome", display.Outcome(string(r.Outcome)))
	tb.row("Trials", trials(r.Trials, r.Space))
	tb.row("Elapsed", elapsed(r.Elapsed))
	if r.Found() {
		if r.Crib != "" {
			tb.row("Crib", r.Crib)
		}
		tb.row("Message", display.Letters(r.Message))
	}
	tb.columns(wrapped(2, 72))

	out := tb.String()
	if r.Found() {
		out += "\n" + SettingsTable(r.Settings, m)
	}
	return out
}

// CatalogTable lists the rotor types, the reflector wirings and the
// searches the engine can run.
func CatalogTable(m Mode) string {
	rotors := newSheet(m, "Rotor", "Wiring", "Notch")
	for _, s := range machine.RotorSpecs() {
		notch := "-"
		if s.HasNotch() {
			notch = string(s.Notch)
		}
		rotors.row(s.Name, s.Wiring, notch)
	}
	rotors.columns(centered(3))

	reflectors := newSheet(m, "Reflector", "Pairs")
	for _, name := range machine.ReflectorNames() {
		r, err := machine.NewReflector(name)
		if err != nil {
			reflectors.row(name, err.Error())
			continue
		}
		reflectors.row(name, display.Pairs(machine.LeadStrings(r.Pairs())))
	}
	reflectors.columns(wrapped(2, 40))

	modes := newSheet(m, "Search", "Code")
	for _, mode := range search.AllModes() {
		modes.row(display.Mode(string(mode)), string(mode))
	}
	modes.footer(fmt.Sprintf("%d searches", len(search.AllModes())), "")

	return strings.Join([]string{rotors.String(), reflectors.String(), modes.String()}, "\n\n")
}

// Scenario is one line of the scenario listing.
type Scenario struct {
	Name        string
	Mode        search.Mode
	Crib        string
	Description string
}

// ScenarioTable lists embedded scenarios with the search each one needs.
func ScenarioTable(list []Scenario, m Mode) string {
	tb := newSheet(m, "Scenario", "Search", "Crib", "Description")
	for _, s := range list {
		tb.row(s.Name, display.Mode(string(s.Mode)), s.Crib, s.Description)
	}
	tb.columns(wrapped(4, 48))
	return tb.String()
}
