package config

import (
	"fmt"
	"strings"

	"bombe/internal/machine"
)

// Defaults applied to every unspecified category before a machine is built,
// and the restricted catalogs searched when rotors or rings are unknown.
var (
	DefaultRotors              = []string{"I", "II", "III"}
	DefaultFourthRotor         = "Beta"
	DefaultReflector           = "B"
	DefaultRingCandidates      = []int{2, 4, 6, 8, 20, 22, 24, 26}
	DefaultRotorCandidates     = []string{"II", "IV", "Beta", "Gamma"}
	DefaultReflectorCandidates = []string{"A", "B", "C"}
	DefaultCribs               = []string{
		"FACEBOOK", "FLICKER", "LINKEDIN", "TWITTER", "INSTAGRAM",
		"YOUTUBE", "PINTEREST", "TUMBLR", "REDDIT", "SNAPCHAT",
	}
)

// Plugs splits the plugboard into complete pairs and single letters whose
// partner is unknown.
type Plugs struct {
	Pairs   []string
	Singles []byte
}

// Task is a normalized configuration: every category is tagged with how
// much of it is known, and the candidate catalogs are filled in.
type Task struct {
	Name        string
	Description string
	Code        string
	Crib        string
	Cribs       []string

	RotorCount int
	Rotors     Setting[[]string]
	Reflector  Setting[string]
	Rings      Setting[[]int]
	Positions  Setting[string]
	Plugboard  Setting[Plugs]

	ReflectorRewired int
	MaxLeads         int

	RingCandidates      []int
	RotorCandidates     []string
	ReflectorCandidates []string
}

// Normalize validates f and converts it to a Task. The record is
// canonicalized first (upper case, catalog spelling, whitespace removed
// from the ciphertext) so hand-written files need not be exact.
func Normalize(f File) (*Task, error) {
	canonicalize(&f)
	if err := validateRecord(&f); err != nil {
		return nil, err
	}

	t := &Task{
		Name:             f.Name,
		Description:      f.Description,
		Code:             f.Code,
		Crib:             f.Crib,
		Cribs:            append([]string(nil), f.Cribs...),
		ReflectorRewired: f.ReflectorRewired,
		MaxLeads:         f.MaxLeads,
	}

	n, err := rotorCount(f)
	if err != nil {
		return nil, err
	}
	t.RotorCount = n

	if len(f.Rotors) > 0 {
		t.Rotors = KnownValue(append([]string(nil), f.Rotors...))
	} else {
		t.Rotors = UnknownValue[[]string]()
	}
	if f.Reflector != "" {
		t.Reflector = KnownValue(f.Reflector)
	} else {
		t.Reflector = UnknownValue[string]()
	}
	if len(f.RingSettings) > 0 {
		t.Rings = KnownValue(Ints(f.RingSettings))
	} else {
		t.Rings = UnknownValue[[]int]()
	}
	if len(f.StartingPositions) > 0 {
		t.Positions = KnownValue(strings.Join(f.StartingPositions, ""))
	} else {
		t.Positions = UnknownValue[string]()
	}

	plugs, err := splitPlugs(f.Plugboard, f.MaxLeads)
	if err != nil {
		return nil, err
	}
	if len(plugs.Singles) > 0 {
		t.Plugboard = PartialValue(plugs)
	} else {
		t.Plugboard = KnownValue(plugs)
	}

	t.RingCandidates = Ints(f.RingCandidates)
	if len(t.RingCandidates) == 0 {
		t.RingCandidates = append([]int(nil), DefaultRingCandidates...)
	}
	t.RotorCandidates = append([]string(nil), f.RotorCandidates...)
	if len(t.RotorCandidates) == 0 {
		t.RotorCandidates = append([]string(nil), DefaultRotorCandidates...)
	}
	t.ReflectorCandidates = append([]string(nil), f.ReflectorCandidates...)
	if len(t.ReflectorCandidates) == 0 {
		t.ReflectorCandidates = append([]string(nil), DefaultReflectorCandidates...)
	}
	if t.ReflectorRewired > 0 && len(t.Cribs) == 0 {
		t.Cribs = append([]string(nil), DefaultCribs...)
	}
	return t, nil
}

// Baseline returns complete machine settings: known categories as given,
// defaults for the rest. Searches start from this value and overwrite the
// categories they enumerate.
func (t *Task) Baseline() machine.Settings {
	s := machine.Settings{MaxLeads: t.MaxLeads}

	if t.Rotors.IsKnown() {
		s.Rotors = append([]string(nil), t.Rotors.Value()...)
	} else {
		s.Rotors = defaultRotors(t.RotorCount)
	}
	if t.Reflector.IsKnown() {
		s.Reflector = t.Reflector.Value()
	} else {
		s.Reflector = DefaultReflector
	}
	if t.Rings.IsKnown() {
		s.Rings = append([]int(nil), t.Rings.Value()...)
	} else {
		s.Rings = make([]int, t.RotorCount)
		for i := range s.Rings {
			s.Rings[i] = 1
		}
	}
	if t.Positions.IsKnown() {
		s.Positions = t.Positions.Value()
	} else {
		s.Positions = strings.Repeat("A", t.RotorCount)
	}
	s.Plugs = append([]string(nil), t.Plugboard.Value().Pairs...)
	return s
}

// Targets lists every fragment whose presence confirms a candidate: the
// crib followed by the crib catalog. A reflector rewiring search checks
// only the catalog.
func (t *Task) Targets() []string {
	if t.ReflectorRewired > 0 {
		return append([]string(nil), t.Cribs...)
	}
	var out []string
	if t.Crib != "" {
		out = append(out, t.Crib)
	}
	return append(out, t.Cribs...)
}

func defaultRotors(n int) []string {
	out := append([]string(nil), DefaultRotors...)
	if n > len(out) {
		out = append([]string{DefaultFourthRotor}, out...)
	}
	return out
}

func canonicalize(f *File) {
	f.Code = strings.ToUpper(strings.Join(strings.Fields(f.Code), ""))
	f.Crib = strings.ToUpper(strings.TrimSpace(f.Crib))
	f.Reflector = strings.ToUpper(strings.TrimSpace(f.Reflector))
	f.Cribs = mapAll(f.Cribs, strings.ToUpper)
	f.StartingPositions = mapAll(f.StartingPositions, strings.ToUpper)
	f.Plugboard = mapAll(f.Plugboard, strings.ToUpper)
	f.ReflectorCandidates = mapAll(f.ReflectorCandidates, strings.ToUpper)
	f.Rotors = mapAll(f.Rotors, machine.CanonicalRotor)
	f.RotorCandidates = mapAll(f.RotorCandidates, machine.CanonicalRotor)
}

// mapAll returns a trimmed, transformed copy; the caller's slice is left alone.
func mapAll(ss []string, fn func(string) string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fn(strings.TrimSpace(s))
	}
	return out
}

// rotorCount reconciles the lengths of the per-rotor lists that are known.
func rotorCount(f File) (int, error) {
	n := 0
	for _, l := range []struct {
		field string
		size  int
	}{
		{"rotors", len(f.Rotors)},
		{"ring_settings", len(f.RingSettings)},
		{"starting_positions", len(f.StartingPositions)},
	} {
		if l.size == 0 {
			continue
		}
		if n != 0 && l.size != n {
			return 0, fmt.Errorf("%w: %s lists %d rotors, expected %d", ErrInvalidConfig, l.field, l.size, n)
		}
		n = l.size
	}
	if n == 0 {
		n = machine.MinRotors
	}
	return n, nil
}

func splitPlugs(entries []string, maxLeads int) (Plugs, error) {
	var p Plugs
	seen := make(map[byte]bool)
	for _, e := range entries {
		for i := 0; i < len(e); i++ {
			if seen[e[i]] {
				return Plugs{}, fmt.Errorf("%w: plugboard letter %c used twice", ErrInvalidConfig, e[i])
			}
			seen[e[i]] = true
		}
		if len(e) == 2 {
			p.Pairs = append(p.Pairs, e)
		} else {
			p.Singles = append(p.Singles, e[0])
		}
	}
	limit := maxLeads
	if limit <= 0 {
		limit = machine.DefaultMaxLeads
	}
	if total := len(p.Pairs) + len(p.Singles); total > limit {
		return Plugs{}, fmt.Errorf("%w: %d plugs exceed the cap of %d leads", ErrInvalidConfig, total, limit)
	}
	return p, nil
}
