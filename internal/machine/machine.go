// Package machine simulates a rotor cipher machine: plugboard, a drum of
// three or four rotors with double stepping, and a reflector.
package machine

import (
	"fmt"

	"bombe/internal/alphabet"
)

const (
	// MinRotors is the smallest drum that can encode.
	MinRotors = 3
	// MaxRotors is the drum capacity; the fourth rotor never steps.
	MaxRotors = 4
)

// Machine composes plugboard, rotors and reflector. Rotor slot 0 is the
// rightmost rotor, the first one the signal passes after the plugboard.
type Machine struct {
	rotors    []*Rotor
	plugboard *Plugboard
	reflector *Reflector
}

// New returns a machine with an empty drum. A nil plugboard is an empty one.
func New(plugboard *Plugboard, reflector *Reflector) *Machine {
	if plugboard == nil {
		plugboard = NewPlugboard(0)
	}
	return &Machine{plugboard: plugboard, reflector: reflector}
}

// AddRotor places r in the next slot to the left of the rotors already added.
func (m *Machine) AddRotor(r *Rotor) error {
	if len(m.rotors) >= MaxRotors {
		return fmt.Errorf("%w: cannot add %s", ErrDrumFull, r.Name())
	}
	m.rotors = append(m.rotors, r)
	return nil
}

// Encode enciphers text from the machine's starting state. Deciphering is
// the same operation. The rotors are returned to their starting positions
// afterwards, so repeated calls yield identical output.
func (m *Machine) Encode(text string) (string, error) {
	if err := m.ready(); err != nil {
		return "", err
	}
	m.Reset()
	defer m.Reset()

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c, ok := alphabet.Index(text[i])
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, text[i], i)
		}
		out[i] = alphabet.Letter(m.press(c))
	}
	return string(out), nil
}

// EncodeLetter presses a single key without resetting the rotors.
func (m *Machine) EncodeLetter(b byte) (byte, error) {
	if err := m.ready(); err != nil {
		return 0, err
	}
	c, ok := alphabet.Index(b)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, b)
	}
	return alphabet.Letter(m.press(c)), nil
}

// Reset returns every rotor to its starting position.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
}

// Windows returns the visible rotor letters, leftmost rotor first.
func (m *Machine) Windows() string {
	out := make([]byte, len(m.rotors))
	for i, r := range m.rotors {
		out[len(m.rotors)-1-i] = r.Window()
	}
	return string(out)
}

// Rotors returns the drum in slot order (rightmost first).
func (m *Machine) Rotors() []*Rotor {
	out := make([]*Rotor, len(m.rotors))
	copy(out, m.rotors)
	return out
}

// Plugboard returns the machine's plugboard.
func (m *Machine) Plugboard() *Plugboard { return m.plugboard }

// Reflector returns the machine's reflector.
func (m *Machine) Reflector() *Reflector { return m.reflector }

func (m *Machine) ready() error {
	if len(m.rotors) < MinRotors {
		return fmt.Errorf("%w: have %d", ErrMissingRotors, len(m.rotors))
	}
	if m.reflector == nil {
		return fmt.Errorf("%w: no reflector fitted", ErrInvalidReflectorWiring)
	}
	return nil
}

// press steps the drum and then passes one contact through the machine.
func (m *Machine) press(c int) int {
	m.step()

	c = m.plugboard.Encode(c)
	for _, r := range m.rotors {
		c = r.Forward(c)
	}
	c = m.reflector.Encode(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].Backward(c)
	}
	return m.plugboard.Encode(c)
}

// step moves the rightmost three rotors. The middle rotor moves when the
// right rotor carries it, and again on its own when it sits on its notch,
// taking the left rotor with it (the double step).
func (m *Machine) step() {
	right, middle, left := m.rotors[0], m.rotors[1], m.rotors[2]
	carry := right.AtNotch()
	double := middle.AtNotch()

	right.Step()
	if carry || double {
		middle.Step()
	}
	if double {
		left.Step()
	}
}
