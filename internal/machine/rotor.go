package machine

import (
	"fmt"

	"bombe/internal/alphabet"
)

// Rotor is one wheel in the drum. The wiring tables never change; the
// current rotation is kept as an offset so a reset is a single assignment.
//
// The offset is the rotation of the wiring core relative to the fixed
// contacts: position - (ring - 1). The ring setting turns the wiring against
// the letter ring, so the notch index is shifted by the same amount and is
// held in the same frame as the offset.
type Rotor struct {
	spec     RotorSpec
	forward  [alphabet.Size]int
	backward [alphabet.Size]int

	position int // initial window letter index
	ring     int // 1-26
	notch    int // notch index in offset frame, -1 for none
	start    int // offset implied by position and ring
	offset   int
}

// NewRotor builds a rotor of the named type showing position in its window
// with the given ring setting (1-26).
func NewRotor(name string, position byte, ring int) (*Rotor, error) {
	spec, err := LookupRotor(name)
	if err != nil {
		return nil, err
	}
	if position >= 'a' && position <= 'z' {
		position -= 'a' - 'A'
	}
	pos, ok := alphabet.Index(position)
	if !ok {
		return nil, fmt.Errorf("%w: got %q for rotor %s", ErrInvalidPosition, position, spec.Name)
	}
	if ring < 1 || ring > alphabet.Size {
		return nil, fmt.Errorf("%w: got %d for rotor %s", ErrInvalidRingSetting, ring, spec.Name)
	}

	r := &Rotor{spec: spec, position: pos, ring: ring, notch: -1}
	for i := 0; i < alphabet.Size; i++ {
		out, _ := alphabet.Index(spec.Wiring[i])
		r.forward[i] = out
		r.backward[out] = i
	}
	shift := ring - 1
	r.start = alphabet.Mod(pos - shift)
	if spec.HasNotch() {
		n, _ := alphabet.Index(spec.Notch)
		r.notch = alphabet.Mod(n - shift)
	}
	r.offset = r.start
	return r, nil
}

// Forward maps a contact entering from the right (plugboard side).
func (r *Rotor) Forward(c int) int {
	return alphabet.Mod(r.forward[(c+r.offset)%alphabet.Size] - r.offset)
}

// Backward maps a contact entering from the left (reflector side).
func (r *Rotor) Backward(c int) int {
	return alphabet.Mod(r.backward[(c+r.offset)%alphabet.Size] - r.offset)
}

// Step advances the rotor by one position.
func (r *Rotor) Step() {
	r.offset = (r.offset + 1) % alphabet.Size
}

// AtNotch reports whether the notch letter is in the window, meaning the
// next step of this rotor also carries its left neighbour.
func (r *Rotor) AtNotch() bool {
	return r.notch >= 0 && r.offset == r.notch
}

// Reset returns the rotor to the position it was built with.
func (r *Rotor) Reset() {
	r.offset = r.start
}

// Window is the letter currently visible in the rotor window.
func (r *Rotor) Window() byte {
	return alphabet.Letter(r.offset + r.ring - 1)
}

// Name is the catalog name of the rotor type.
func (r *Rotor) Name() string { return r.spec.Name }

// Position is the starting window letter.
func (r *Rotor) Position() byte { return alphabet.Letter(r.position) }

// Ring is the ring setting, 1-26.
func (r *Rotor) Ring() int { return r.ring }

func (r *Rotor) String() string {
	return fmt.Sprintf("%s %c %02d", r.spec.Name, r.Position(), r.ring)
}
