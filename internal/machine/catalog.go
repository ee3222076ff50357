package machine

import (
	"fmt"
	"strings"
)

// RotorSpec is the static description of one rotor type.
type RotorSpec struct {
	Name   string
	Wiring string
	// Notch is the window letter at which the rotor carries its left
	// neighbour; 0 means the rotor has no notch.
	Notch byte
}

// HasNotch reports whether the rotor can step its neighbour.
func (s RotorSpec) HasNotch() bool { return s.Notch != 0 }

var rotorCatalog = []RotorSpec{
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'},
	{Name: "Beta", Wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS"},
	{Name: "Gamma", Wiring: "FSOKANUERHMBTIYCWLQPZXVGJD"},
}

var reflectorCatalog = map[string]string{
	"A": "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C": "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// LookupRotor finds a rotor type by name, ignoring case.
func LookupRotor(name string) (RotorSpec, error) {
	for _, s := range rotorCatalog {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return RotorSpec{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRotor, name, strings.Join(RotorNames(), ", "))
}

// CanonicalRotor returns the catalog spelling of name, or name unchanged
// when it is not in the catalog.
func CanonicalRotor(name string) string {
	if s, err := LookupRotor(name); err == nil {
		return s.Name
	}
	return name
}

// RotorNames lists the catalog rotor types in catalog order.
func RotorNames() []string {
	names := make([]string, len(rotorCatalog))
	for i, s := range rotorCatalog {
		names[i] = s.Name
	}
	return names
}

// RotorSpecs returns a copy of the rotor catalog.
func RotorSpecs() []RotorSpec {
	out := make([]RotorSpec, len(rotorCatalog))
	copy(out, rotorCatalog)
	return out
}

// ReflectorNames lists the catalog reflector types: A, B, C.
func ReflectorNames() []string {
	return []string{"A", "B", "C"}
}

func lookupReflectorWiring(name string) (string, string, error) {
	up := strings.ToUpper(name)
	w, ok := reflectorCatalog[up]
	if !ok {
		return "", "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownReflector, name, strings.Join(ReflectorNames(), ", "))
	}
	return up, w, nil
}
