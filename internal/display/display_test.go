package display

import "testing"

func TestMode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"positions", "Starting Position Search"},
		{"reflector-wiring", "Reflector Rewiring Search"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := Mode(tt.code); got != tt.want {
			t.Errorf("Mode(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestModeWithCode(t *testing.T) {
	if got := ModeWithCode("plugboard"); got != "Plugboard Completion (plugboard)" {
		t.Errorf("ModeWithCode(plugboard) = %q", got)
	}
	if got := ModeWithCode("x"); got != "x" {
		t.Errorf("ModeWithCode(x) = %q, want x", got)
	}
}

func TestOutcome(t *testing.T) {
	if got := Outcome("trial-limit"); got != "Trial Limit Reached" {
		t.Errorf("Outcome(trial-limit) = %q", got)
	}
	if got := Outcome("other"); got != "other" {
		t.Errorf("Outcome(other) = %q", got)
	}
}

func TestCategory(t *testing.T) {
	if got := Category("ring_settings"); got != "Ring Settings" {
		t.Errorf("Category(ring_settings) = %q", got)
	}
}

func TestLetters(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"ABCDE", "ABCDE"},
		{"ABCDEFG", "ABCDE FG"},
		{"BDZGOBDZGO", "BDZGO BDZGO"},
	}
	for _, tt := range tests {
		if got := Letters(tt.in); got != tt.want {
			t.Errorf("Letters(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPairs(t *testing.T) {
	if got := Pairs(nil); got != "none" {
		t.Errorf("Pairs(nil) = %q", got)
	}
	if got := Pairs([]string{"KI", "XN"}); got != "KI XN" {
		t.Errorf("Pairs = %q", got)
	}
}
