package machine

import (
	"fmt"

	"bombe/internal/alphabet"
)

// DefaultMaxLeads is the number of cables a plugboard accepts when no cap is
// configured. Thirteen leads use every letter.
const DefaultMaxLeads = alphabet.Size / 2

// Plugboard swaps letters pairwise before and after the rotor stack.
type Plugboard struct {
	maxLeads int
	leads    []Lead
	wired    [alphabet.Size]int
	used     [alphabet.Size]bool
}

// NewPlugboard returns an empty plugboard holding at most maxLeads leads.
// maxLeads <= 0 selects DefaultMaxLeads; larger caps are clamped to it.
func NewPlugboard(maxLeads int) *Plugboard {
	if maxLeads <= 0 || maxLeads > DefaultMaxLeads {
		maxLeads = DefaultMaxLeads
	}
	p := &Plugboard{maxLeads: maxLeads}
	for i := range p.wired {
		p.wired[i] = i
	}
	return p
}

// Add connects a lead. Neither letter may already be plugged.
func (p *Plugboard) Add(l Lead) error {
	if len(p.leads) >= p.maxLeads {
		return fmt.Errorf("%w: all %d leads connected, cannot add %s", ErrCapacityExceeded, p.maxLeads, l)
	}
	x, y := l.Ends()
	for _, c := range []int{x, y} {
		if p.used[c] {
			return fmt.Errorf("%w: %c (adding %s)", ErrLetterInUse, alphabet.Letter(c), l)
		}
	}
	p.leads = append(p.leads, l)
	p.used[x], p.used[y] = true, true
	p.wired[x], p.wired[y] = y, x
	return nil
}

// Encode maps c through the plugged lead containing it, if any.
func (p *Plugboard) Encode(c int) int {
	return p.wired[c]
}

// Leads returns the connected pairs in the order they were added.
func (p *Plugboard) Leads() []Lead {
	out := make([]Lead, len(p.leads))
	copy(out, p.leads)
	return out
}

// Len is the number of connected leads.
func (p *Plugboard) Len() int { return len(p.leads) }

// MaxLeads is the configured cap.
func (p *Plugboard) MaxLeads() int { return p.maxLeads }
