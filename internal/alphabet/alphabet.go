// Package alphabet is the fixed 26-letter domain every machine part works over.
package alphabet

// Letters is the ordered alphabet; a letter's position is its index.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Size is the number of symbols.
const Size = len(Letters)

// Index returns the position of an upper-case letter.
func Index(b byte) (int, bool) {
	if b < 'A' || b > 'Z' {
		return 0, false
	}
	return int(b - 'A'), true
}

// Letter returns the letter at position i (taken modulo Size).
func Letter(i int) byte {
	return Letters[Mod(i)]
}

// Mod reduces i into [0, Size).
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// Valid reports whether s is non-empty and consists only of A-Z.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := Index(s[i]); !ok {
			return false
		}
	}
	return true
}
