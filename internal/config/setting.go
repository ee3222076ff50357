package config

// State tells whether a setting category was supplied.
type State int

const (
	Known   State = iota // fully specified
	Unknown              // to be searched
	Partial              // partly specified (plugboard with single-letter plugs)
)

func (s State) String() string {
	switch s {
	case Known:
		return "known"
	case Unknown:
		return "unknown"
	case Partial:
		return "partial"
	default:
		return "invalid"
	}
}

// Setting is one setting category tagged with how much of it is known.
type Setting[T any] struct {
	state State
	value T
}

// KnownValue wraps a fully specified value.
func KnownValue[T any](v T) Setting[T] { return Setting[T]{state: Known, value: v} }

// UnknownValue marks a category as unknown.
func UnknownValue[T any]() Setting[T] { return Setting[T]{state: Unknown} }

// PartialValue wraps a partly specified value.
func PartialValue[T any](v T) Setting[T] { return Setting[T]{state: Partial, value: v} }

// State reports the tag.
func (s Setting[T]) State() State { return s.state }

// Value returns the wrapped value; it is the zero value for Unknown.
func (s Setting[T]) Value() T { return s.value }

// IsKnown reports whether the category is fully specified.
func (s Setting[T]) IsKnown() bool { return s.state == Known }

// IsUnknown reports whether the category must be searched.
func (s Setting[T]) IsUnknown() bool { return s.state == Unknown }

// IsPartial reports whether the category is partly specified.
func (s Setting[T]) IsPartial() bool { return s.state == Partial }
