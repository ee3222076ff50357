package machine

import (
	"fmt"
	"strings"

	"bombe/internal/alphabet"
)

// Lead is one unordered pairing of two letters. Plugboard cables and
// reflector wires are both modelled as leads.
type Lead struct {
	x, y int
}

// NewLead parses a two-letter pair such as "KI". Lower case is accepted.
func NewLead(pair string) (Lead, error) {
	if len(pair) != 2 {
		return Lead{}, fmt.Errorf("%w: %q must be exactly two letters", ErrInvalidLead, pair)
	}
	up := strings.ToUpper(pair)
	x, okx := alphabet.Index(up[0])
	y, oky := alphabet.Index(up[1])
	if !okx || !oky {
		return Lead{}, fmt.Errorf("%w: %q must contain only letters A-Z", ErrInvalidLead, pair)
	}
	return LeadOf(x, y)
}

// LeadOf pairs two letter indexes.
func LeadOf(x, y int) (Lead, error) {
	if x < 0 || x >= alphabet.Size || y < 0 || y >= alphabet.Size {
		return Lead{}, fmt.Errorf("%w: index out of range (%d, %d)", ErrInvalidLead, x, y)
	}
	if x == y {
		return Lead{}, fmt.Errorf("%w: %c cannot be paired with itself", ErrInvalidLead, alphabet.Letter(x))
	}
	return Lead{x: x, y: y}, nil
}

// MustLead is NewLead for literals known to be valid; it panics otherwise.
func MustLead(pair string) Lead {
	l, err := NewLead(pair)
	if err != nil {
		panic(err)
	}
	return l
}

// Encode returns the partner of c when c belongs to the lead, c otherwise.
func (l Lead) Encode(c int) int {
	switch c {
	case l.x:
		return l.y
	case l.y:
		return l.x
	}
	return c
}

// Ends returns both letter indexes in the order the lead was created.
func (l Lead) Ends() (int, int) {
	return l.x, l.y
}

// String returns the pair as two letters, e.g. "KI".
func (l Lead) String() string {
	return string([]byte{alphabet.Letter(l.x), alphabet.Letter(l.y)})
}

// LeadStrings renders leads as their two-letter form.
func LeadStrings(leads []Lead) []string {
	out := make([]string, len(leads))
	for i, l := range leads {
		out[i] = l.String()
	}
	return out
}

// ParseLeads parses every pair in order; the first invalid pair fails the call.
func ParseLeads(pairs []string) ([]Lead, error) {
	leads := make([]Lead, 0, len(pairs))
	for _, p := range pairs {
		l, err := NewLead(p)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}
