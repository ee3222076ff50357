package search

import (
	"fmt"
	"strings"

	"bombe/internal/config"
)

// Mode names the category of settings a run enumerates.
type Mode string

const (
	ModeDirect          Mode = "direct"
	ModeReflector       Mode = "reflector"
	ModePositions       Mode = "positions"
	ModePlugboard       Mode = "plugboard"
	ModeJoint           Mode = "joint"
	ModeReflectorWiring Mode = "reflector-wiring"
)

// AllModes lists every mode in the order they are documented.
func AllModes() []Mode {
	return []Mode{ModeDirect, ModeReflector, ModePositions, ModePlugboard, ModeJoint, ModeReflectorWiring}
}

// SelectMode picks the search for the categories t leaves unknown. The
// modes are mutually exclusive; anything outside them is unsupported.
func SelectMode(t *config.Task) (Mode, error) {
	var unknown []string
	if t.Rotors.IsUnknown() {
		unknown = append(unknown, "rotors")
	}
	if t.Rings.IsUnknown() {
		unknown = append(unknown, "ring_settings")
	}
	if t.Reflector.IsUnknown() {
		unknown = append(unknown, "reflector")
	}
	if t.Positions.IsUnknown() {
		unknown = append(unknown, "starting_positions")
	}
	if t.Plugboard.IsPartial() {
		unknown = append(unknown, "plugboard")
	}

	if t.ReflectorRewired > 0 {
		if len(unknown) > 0 {
			return "", fmt.Errorf("%w: reflector rewiring needs every other setting known (unknown: %s)",
				ErrUnsupportedSearch, strings.Join(unknown, ", "))
		}
		return ModeReflectorWiring, nil
	}

	switch {
	case len(unknown) == 0:
		return ModeDirect, nil
	case len(unknown) == 1 && t.Reflector.IsUnknown():
		return ModeReflector, nil
	case len(unknown) == 1 && t.Positions.IsUnknown():
		return ModePositions, nil
	case len(unknown) == 1 && t.Plugboard.IsPartial():
		return ModePlugboard, nil
	case (t.Rotors.IsUnknown() || t.Rings.IsUnknown()) && !t.Positions.IsUnknown() && !t.Plugboard.IsPartial():
		return ModeJoint, nil
	}
	return "", fmt.Errorf("%w: unknown %s", ErrUnsupportedSearch, strings.Join(unknown, ", "))
}
