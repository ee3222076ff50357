package machine

import "errors"

var (
	// ErrMissingRotors is returned when encoding is attempted with fewer than MinRotors.
	ErrMissingRotors = errors.New("machine: at least three rotors required")

	// ErrDrumFull is returned when a rotor is added to a drum already holding MaxRotors.
	ErrDrumFull = errors.New("machine: drum holds at most four rotors")

	// ErrCapacityExceeded is returned when the plugboard has no free leads left.
	ErrCapacityExceeded = errors.New("machine: plugboard lead capacity exceeded")

	// ErrLetterInUse is returned when a lead reuses a letter that is already plugged.
	ErrLetterInUse = errors.New("machine: plugboard letter already connected")

	// ErrInvalidLead is returned for a pair that is not two distinct letters.
	ErrInvalidLead = errors.New("machine: invalid lead")

	// ErrInvalidReflectorWiring is returned when reflector pairs do not form
	// a complete involution over the alphabet.
	ErrInvalidReflectorWiring = errors.New("machine: invalid reflector wiring")

	// ErrUnknownRotor is returned for a rotor name outside the catalog.
	ErrUnknownRotor = errors.New("machine: unknown rotor type")

	// ErrUnknownReflector is returned for a reflector name outside the catalog.
	ErrUnknownReflector = errors.New("machine: unknown reflector type")

	// ErrInvalidPosition is returned for a starting position that is not A-Z.
	ErrInvalidPosition = errors.New("machine: starting position must be A-Z")

	// ErrInvalidRingSetting is returned for a ring setting outside 1-26.
	ErrInvalidRingSetting = errors.New("machine: ring setting must be between 1 and 26")

	// ErrInvalidLetter is returned when input text contains a non A-Z symbol.
	ErrInvalidLetter = errors.New("machine: input must be letters A-Z")
)
