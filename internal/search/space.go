package search

import (
	"fmt"

	"bombe/internal/alphabet"
	"bombe/internal/config"
	"bombe/internal/machine"
)

// Space is an index-addressable candidate set. Candidate writes candidate i
// into s, which holds the task baseline, and reports false when the index
// names no valid machine and must be skipped untested. Implementations are
// read-only after construction and safe for concurrent use.
type Space interface {
	Len() int
	Candidate(i int, s *machine.Settings) bool
}

// NewSpace builds the candidate space of mode for t.
func NewSpace(mode Mode, t *config.Task) (Space, error) {
	switch mode {
	case ModeDirect:
		return directSpace{}, nil
	case ModeReflector:
		return newReflectorSpace(t.ReflectorCandidates)
	case ModePositions:
		return newPositionsSpace(t.RotorCount), nil
	case ModePlugboard:
		return newPlugboardSpace(t.Plugboard.Value()), nil
	case ModeJoint:
		return newJointSpace(t)
	case ModeReflectorWiring:
		return newRewireSpace(t.Reflector.Value(), t.ReflectorRewired)
	}
	return nil, fmt.Errorf("%w: mode %q", ErrUnsupportedSearch, mode)
}

type directSpace struct{}

func (directSpace) Len() int { return 1 }
func (directSpace) Candidate(int, *machine.Settings) bool { return true }

type reflectorSpace struct{ names []string }

func newReflectorSpace(names []string) (reflectorSpace, error) {
	if len(names) == 0 {
		return reflectorSpace{}, fmt.Errorf("%w: reflectors", ErrNoCandidates)
	}
	return reflectorSpace{names: append([]string(nil), names...)}, nil
}

func (r reflectorSpace) Len() int { return len(r.names) }

func (r reflectorSpace) Candidate(i int, s *machine.Settings) bool {
	s.Reflector = r.names[i]
	return true
}

// positionsSpace enumerates every window combination, leftmost rotor slowest.
type positionsSpace struct{ product Product }

func newPositionsSpace(n int) positionsSpace {
	radices := make([]int, n)
	for i := range radices {
		radices[i] = alphabet.Size
	}
	return positionsSpace{product: NewProduct(radices...)}
}

func (p positionsSpace) Len() int { return p.product.Len() }

func (p positionsSpace) Candidate(i int, s *machine.Settings) bool {
	digits := make([]int, p.product.Dims())
	p.product.Decode(i, digits)
	pos := make([]byte, len(digits))
	for d, v := range digits {
		pos[d] = alphabet.Letter(v)
	}
	s.Positions = string(pos)
	return true
}

// plugboardSpace completes every single-letter plug with a letter no other
// plug touches. The first single varies slowest. Completions that pick the
// same partner twice are skipped.
type plugboardSpace struct {
	pairs   []string
	singles []byte
	free    []byte
	product Product
}

func newPlugboardSpace(p config.Plugs) plugboardSpace {
	var used [alphabet.Size]bool
	for _, pair := range p.Pairs {
		for k := 0; k < len(pair); k++ {
			if c, ok := alphabet.Index(pair[k]); ok {
				used[c] = true
			}
		}
	}
	for _, b := range p.Singles {
		if c, ok := alphabet.Index(b); ok {
			used[c] = true
		}
	}
	var free []byte
	for c := 0; c < alphabet.Size; c++ {
		if !used[c] {
			free = append(free, alphabet.Letter(c))
		}
	}
	radices := make([]int, len(p.Singles))
	for i := range radices {
		radices[i] = len(free)
	}
	return plugboardSpace{
		pairs:   append([]string(nil), p.Pairs...),
		singles: append([]byte(nil), p.Singles...),
		free:    free,
		product: NewProduct(radices...),
	}
}

func (p plugboardSpace) Len() int { return p.product.Len() }

func (p plugboardSpace) Candidate(i int, s *machine.Settings) bool {
	digits := make([]int, p.product.Dims())
	p.product.Decode(i, digits)
	var taken [alphabet.Size]bool
	plugs := append(make([]string, 0, len(p.pairs)+len(p.singles)), p.pairs...)
	for d, v := range digits {
		if taken[v] {
			return false
		}
		taken[v] = true
		plugs = append(plugs, string([]byte{p.singles[d], p.free[v]}))
	}
	s.Plugs = plugs
	return true
}

// jointSpace enumerates the restricted catalogs for every unknown category:
// ring settings (slowest), then rotor types, then the reflector (fastest).
type jointSpace struct {
	n          int
	rings      []int
	rotors     []string
	reflectors []string
	product    Product
}

func newJointSpace(t *config.Task) (jointSpace, error) {
	j := jointSpace{n: t.RotorCount}
	var radices []int
	if t.Rings.IsUnknown() {
		if len(t.RingCandidates) == 0 {
			return j, fmt.Errorf("%w: ring settings", ErrNoCandidates)
		}
		j.rings = t.RingCandidates
		for i := 0; i < j.n; i++ {
			radices = append(radices, len(j.rings))
		}
	}
	if t.Rotors.IsUnknown() {
		if len(t.RotorCandidates) == 0 {
			return j, fmt.Errorf("%w: rotors", ErrNoCandidates)
		}
		j.rotors = t.RotorCandidates
		for i := 0; i < j.n; i++ {
			radices = append(radices, len(j.rotors))
		}
	}
	if t.Reflector.IsUnknown() {
		if len(t.ReflectorCandidates) == 0 {
			return j, fmt.Errorf("%w: reflectors", ErrNoCandidates)
		}
		j.reflectors = t.ReflectorCandidates
		radices = append(radices, len(j.reflectors))
	}
	j.product = NewProduct(radices...)
	return j, nil
}

func (j jointSpace) Len() int { return j.product.Len() }

func (j jointSpace) Candidate(i int, s *machine.Settings) bool {
	digits := make([]int, j.product.Dims())
	j.product.Decode(i, digits)
	d := 0
	if j.rings != nil {
		rings := make([]int, j.n)
		for k := range rings {
			rings[k] = j.rings[digits[d]]
			d++
		}
		s.Rings = rings
	}
	if j.rotors != nil {
		rotors := make([]string, j.n)
		for k := range rotors {
			rotors[k] = j.rotors[digits[d]]
			d++
		}
		s.Rotors = rotors
	}
	if j.reflectors != nil {
		s.Reflector = j.reflectors[digits[d]]
	}
	return true
}

// rewireSpace picks k of the reflector's pairs and reconnects their first
// letters to a permutation of their second letters. Candidate i is subset
// i / k! under permutation i % k!.
type rewireSpace struct {
	base   *machine.Reflector
	pairs  []machine.Lead
	combos Combinations
	perms  Permutations
}

func newRewireSpace(reflector string, k int) (rewireSpace, error) {
	refl, err := machine.NewReflector(reflector)
	if err != nil {
		return rewireSpace{}, err
	}
	pairs := refl.Pairs()
	if k > len(pairs) {
		return rewireSpace{}, fmt.Errorf("%w: cannot rewire %d of %d reflector pairs", ErrUnsupportedSearch, k, len(pairs))
	}
	return rewireSpace{
		base:   refl,
		pairs:  pairs,
		combos: NewCombinations(len(pairs), k),
		perms:  NewPermutations(k),
	}, nil
}

func (r rewireSpace) Len() int { return r.combos.Len() * r.perms.Len() }

func (r rewireSpace) Candidate(i int, s *machine.Settings) bool {
	k := r.combos.K()
	combo := make([]int, k)
	perm := make([]int, k)
	r.combos.Decode(i/r.perms.Len(), combo)
	r.perms.Decode(i%r.perms.Len(), perm)

	replacements := make([]machine.Lead, k)
	for j, idx := range combo {
		first, _ := r.pairs[idx].Ends()
		_, second := r.pairs[combo[perm[j]]].Ends()
		l, err := machine.LeadOf(first, second)
		if err != nil {
			return false
		}
		replacements[j] = l
	}
	rewired, err := r.base.Rewire(replacements)
	if err != nil {
		return false
	}
	s.ReflectorPairs = machine.LeadStrings(rewired.Pairs())
	return true
}
