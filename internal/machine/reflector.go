package machine

import (
	"fmt"

	"bombe/internal/alphabet"
)

// Reflector turns the signal back through the rotor stack. Its wiring is a
// full involution: thirteen disjoint leads covering every letter.
type Reflector struct {
	name  string
	pairs []Lead
	wired [alphabet.Size]int
}

// NewReflector builds a catalog reflector (A, B or C, case-insensitive).
func NewReflector(name string) (*Reflector, error) {
	canon, wiring, err := lookupReflectorWiring(name)
	if err != nil {
		return nil, err
	}
	var seen [alphabet.Size]bool
	pairs := make([]Lead, 0, alphabet.Size/2)
	for i := 0; i < alphabet.Size; i++ {
		if seen[i] {
			continue
		}
		j, _ := alphabet.Index(wiring[i])
		l, err := LeadOf(i, j)
		if err != nil {
			return nil, fmt.Errorf("reflector %s: %w", canon, err)
		}
		seen[i], seen[j] = true, true
		pairs = append(pairs, l)
	}
	return NewCustomReflector(canon, pairs)
}

// NewCustomReflector builds a reflector from explicit pairs. The pairs must
// be thirteen disjoint leads that together cover the whole alphabet.
func NewCustomReflector(name string, pairs []Lead) (*Reflector, error) {
	if len(pairs) != alphabet.Size/2 {
		return nil, fmt.Errorf("%w: need %d pairs, got %d", ErrInvalidReflectorWiring, alphabet.Size/2, len(pairs))
	}
	r := &Reflector{name: name, pairs: make([]Lead, len(pairs))}
	copy(r.pairs, pairs)
	for i := range r.wired {
		r.wired[i] = -1
	}
	for _, l := range pairs {
		x, y := l.Ends()
		if r.wired[x] >= 0 || r.wired[y] >= 0 {
			return nil, fmt.Errorf("%w: pair %s reuses a wired letter", ErrInvalidReflectorWiring, l)
		}
		r.wired[x], r.wired[y] = y, x
	}
	return r, nil
}

// Encode returns the letter wired to c.
func (r *Reflector) Encode(c int) int {
	return r.wired[c]
}

// Name is the reflector type the wiring was derived from.
func (r *Reflector) Name() string { return r.name }

// Pairs returns the wiring as leads, in construction order.
func (r *Reflector) Pairs() []Lead {
	out := make([]Lead, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// Rewire returns a new reflector of the same type in which the replacement
// pairs take the place of every original pair sharing a letter with them.
// Untouched original pairs are kept in their original order after the
// replacements.
func (r *Reflector) Rewire(replacements []Lead) (*Reflector, error) {
	var used [alphabet.Size]bool
	pairs := make([]Lead, 0, alphabet.Size/2)
	for _, l := range replacements {
		x, y := l.Ends()
		used[x], used[y] = true, true
		pairs = append(pairs, l)
	}
	for _, l := range r.pairs {
		x, y := l.Ends()
		if used[x] || used[y] {
			continue
		}
		used[x], used[y] = true, true
		pairs = append(pairs, l)
	}
	return NewCustomReflector(r.name, pairs)
}
