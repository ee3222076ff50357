// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and tool responses.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import "strings"

// --- Search Modes ---

var modes = map[string]string{
	"direct":           "Direct Decode",
	"reflector":        "Reflector Search",
	"positions":        "Starting Position Search",
	"plugboard":        "Plugboard Completion",
	"joint":            "Rotor, Ring and Reflector Search",
	"reflector-wiring": "Reflector Rewiring Search",
}

// Mode returns the human-readable name for a search mode code.
// Unknown codes are returned as-is.
func Mode(code string) string {
	if name, ok := modes[code]; ok {
		return name
	}
	return code
}

// ModeWithCode returns "Plugboard Completion (plugboard)" format.
func ModeWithCode(code string) string {
	if name, ok := modes[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Outcomes ---

var outcomes = map[string]string{
	"found":       "Settings Recovered",
	"not-found":   "No Candidate Matched",
	"trial-limit": "Trial Limit Reached",
	"timeout":     "Timed Out",
	"canceled":    "Canceled",
}

// Outcome returns the human-readable name for a search outcome.
// "not-found" -> "No Candidate Matched".
func Outcome(code string) string {
	if name, ok := outcomes[code]; ok {
		return name
	}
	return code
}

// --- Setting Categories ---

var categories = map[string]string{
	"rotors":             "Rotors",
	"reflector":          "Reflector",
	"ring_settings":      "Ring Settings",
	"starting_positions": "Starting Positions",
	"plugboard":          "Plugboard",
	"reflector_wiring":   "Reflector Wiring",
}

// Category returns the label for a configuration field name.
func Category(field string) string {
	if name, ok := categories[field]; ok {
		return name
	}
	return field
}

// Letters spaces a run of letters into groups of five, the way
// intercepts were written down. "ABCDEFG" -> "ABCDE FG".
func Letters(s string) string {
	if len(s) <= 5 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += 5 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i:min(i+5, len(s))])
	}
	return b.String()
}

// Pairs joins plug or reflector pairs with spaces; an empty list is "none".
func Pairs(pairs []string) string {
	if len(pairs) == 0 {
		return "none"
	}
	return strings.Join(pairs, " ")
}
