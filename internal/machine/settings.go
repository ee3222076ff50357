package machine

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings is a complete machine configuration written the way an operator
// reads it: every list runs from the leftmost rotor to the rightmost.
type Settings struct {
	Rotors    []string `json:"rotors" yaml:"rotors"`
	Positions string   `json:"starting_positions" yaml:"starting_positions"`
	Rings     []int    `json:"ring_settings" yaml:"ring_settings"`
	Reflector string   `json:"reflector" yaml:"reflector"`
	// ReflectorPairs replaces the catalog wiring of Reflector when set.
	ReflectorPairs []string `json:"reflector_wiring,omitempty" yaml:"reflector_wiring,omitempty"`
	Plugs          []string `json:"plugboard" yaml:"plugboard"`
	MaxLeads       int      `json:"max_leads,omitempty" yaml:"max_leads,omitempty"`
}

// Clone returns a deep copy so candidates can be mutated independently.
func (s Settings) Clone() Settings {
	c := s
	c.Rotors = append([]string(nil), s.Rotors...)
	c.Rings = append([]int(nil), s.Rings...)
	c.ReflectorPairs = append([]string(nil), s.ReflectorPairs...)
	c.Plugs = append([]string(nil), s.Plugs...)
	return c
}

// Build assembles a fresh machine from s.
func Build(s Settings) (*Machine, error) {
	n := len(s.Rotors)
	if n < MinRotors {
		return nil, fmt.Errorf("%w: settings list %d", ErrMissingRotors, n)
	}
	if n > MaxRotors {
		return nil, fmt.Errorf("%w: settings list %d", ErrDrumFull, n)
	}
	if len(s.Positions) != n || len(s.Rings) != n {
		return nil, fmt.Errorf("machine: %d rotors need %d positions and ring settings, got %d and %d",
			n, n, len(s.Positions), len(s.Rings))
	}

	pb := NewPlugboard(s.MaxLeads)
	for _, p := range s.Plugs {
		l, err := NewLead(p)
		if err != nil {
			return nil, fmt.Errorf("plugboard: %w", err)
		}
		if err := pb.Add(l); err != nil {
			return nil, err
		}
	}

	refl, err := NewReflector(s.Reflector)
	if err != nil {
		return nil, err
	}
	if len(s.ReflectorPairs) > 0 {
		pairs, err := ParseLeads(s.ReflectorPairs)
		if err != nil {
			return nil, fmt.Errorf("reflector wiring: %w", err)
		}
		if refl, err = NewCustomReflector(refl.Name(), pairs); err != nil {
			return nil, err
		}
	}

	m := New(pb, refl)
	for i := n - 1; i >= 0; i-- {
		r, err := NewRotor(s.Rotors[i], s.Positions[i], s.Rings[i])
		if err != nil {
			return nil, err
		}
		if err := m.AddRotor(r); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ParseRings parses ring settings such as "04,02,14" or "4 2 14".
func ParseRings(s string) ([]int, error) {
	fields := splitList(s)
	rings := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRingSetting, f)
		}
		rings = append(rings, v)
	}
	return rings, nil
}

// ParsePlugs splits a plug list such as "KI XN FL" or "KI,XN,FL".
func ParsePlugs(s string) []string {
	fields := splitList(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f)
	}
	return fields
}

// ParseRotors splits a rotor list such as "Beta,Gamma,V".
func ParseRotors(s string) []string {
	fields := splitList(s)
	for i, f := range fields {
		fields[i] = CanonicalRotor(f)
	}
	return fields
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
