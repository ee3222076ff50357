// Package config reads a task description (ciphertext, crib and whatever
// machine settings are known) and normalizes it into a Task.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the configuration record as written in YAML or JSON. A null or
// missing rotors, reflector, ring_settings or starting_positions field marks
// that category unknown; a plugboard entry of a single letter marks a plug
// whose partner is unknown.
type File struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Code  string   `json:"code" yaml:"code" validate:"required,alpha,uppercase"`
	Crib  string   `json:"crib,omitempty" yaml:"crib,omitempty" validate:"omitempty,alpha,uppercase"`
	Cribs []string `json:"cribs,omitempty" yaml:"cribs,omitempty" validate:"omitempty,dive,required,alpha,uppercase"`

	Rotors            []string      `json:"rotors" yaml:"rotors" validate:"omitempty,min=3,max=4,dive,rotor"`
	Reflector         string        `json:"reflector" yaml:"reflector" validate:"omitempty,reflector"`
	RingSettings      []RingSetting `json:"ring_settings" yaml:"ring_settings" validate:"omitempty,min=3,max=4,dive,min=1,max=26"`
	StartingPositions []string      `json:"starting_positions" yaml:"starting_positions" validate:"omitempty,min=3,max=4,dive,len=1,alpha,uppercase"`
	Plugboard         []string      `json:"plugboard" yaml:"plugboard" validate:"omitempty,max=13,dive,min=1,max=2,alpha,uppercase"`

	// ReflectorRewired is the number of reflector wires suspected to be
	// swapped; zero means the reflector wiring is the catalog one.
	ReflectorRewired int `json:"reflector_rewired,omitempty" yaml:"reflector_rewired,omitempty" validate:"min=0,max=13"`
	MaxLeads         int `json:"max_leads,omitempty" yaml:"max_leads,omitempty" validate:"min=0,max=13"`

	RingCandidates      []RingSetting `json:"ring_candidates,omitempty" yaml:"ring_candidates,omitempty" validate:"omitempty,dive,min=1,max=26"`
	RotorCandidates     []string      `json:"rotor_candidates,omitempty" yaml:"rotor_candidates,omitempty" validate:"omitempty,dive,rotor"`
	ReflectorCandidates []string      `json:"reflector_candidates,omitempty" yaml:"reflector_candidates,omitempty" validate:"omitempty,dive,reflector"`
}

// RingSetting is a ring setting 1-26. It is written as a two-digit string
// ("04") in the sample data but plain integers are accepted too.
type RingSetting int

func (r RingSetting) String() string { return fmt.Sprintf("%02d", int(r)) }

// UnmarshalYAML accepts a scalar such as 04, "04" or 4.
func (r *RingSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ring setting: expected scalar at line %d", node.Line)
	}
	return r.parse(node.Value)
}

// UnmarshalJSON accepts a number or a numeric string.
func (r *RingSetting) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("ring setting: %w", err)
		}
	}
	return r.parse(s)
}

// MarshalJSON writes the two-digit form.
func (r RingSetting) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// MarshalYAML writes the two-digit form.
func (r RingSetting) MarshalYAML() (any, error) {
	return r.String(), nil
}

func (r *RingSetting) parse(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("ring setting %q: not a number", s)
	}
	*r = RingSetting(v)
	return nil
}

// Ints converts ring settings to plain integers.
func Ints(rs []RingSetting) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = int(r)
	}
	return out
}

// RingSettings converts plain integers to ring settings.
func RingSettings(v []int) []RingSetting {
	out := make([]RingSetting, len(v))
	for i, r := range v {
		out[i] = RingSetting(r)
	}
	return out
}
