package machine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bombe/internal/alphabet"
)

func mustBuild(t *testing.T, s Settings) *Machine {
	t.Helper()
	m, err := Build(s)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestEncode_PublishedVectors(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		in   string
		want string
	}{
		{
			name: "I-II-III AAA",
			s:    Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAA", Rings: []int{1, 1, 1}, Reflector: "B"},
			in:   "AAAAA",
			want: "BDZGO",
		},
		{
			name: "ring B with one lead",
			s:    Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAA", Rings: []int{2, 2, 2}, Reflector: "B", Plugs: []string{"AB"}},
			in:   "AAAAA",
			want: "UZYRQ",
		},
		{
			name: "four rotors",
			s:    Settings{Rotors: []string{"I", "II", "III", "IV"}, Positions: "QEVZ", Rings: []int{7, 11, 15, 19}, Reflector: "C"},
			in:   "Z",
			want: "V",
		},
		{
			name: "four rotors ten leads",
			s: Settings{
				Rotors: []string{"IV", "V", "Beta", "I"}, Positions: "EZGP", Rings: []int{18, 24, 3, 5}, Reflector: "A",
				Plugs: []string{"PC", "XZ", "FM", "QA", "ST", "NB", "HY", "OR", "EV", "IU"},
			},
			in:   "BUPXWJCDPFASXBDHLBBIBSRNWCSZXQOLBNXYAXVHOGCUUIBCVMPUZYUUKHI",
			want: "CONGRATULATIONSONPRODUCINGYOURWORKINGENIGMAMACHINESIMULATOR",
		},
		{
			name: "secrets",
			s: Settings{
				Rotors: []string{"Beta", "Gamma", "V"}, Positions: "MJM", Rings: []int{4, 2, 14}, Reflector: "C",
				Plugs: []string{"KI", "XN", "FL"},
			},
			in:   "DMEXBMKYCVPNQBEDHXVPZGKMTFFBJRPJTLHLCHOTKOYXGGHZ",
			want: "NICEWORKYOUVEMANAGEDTODECODETHEFIRSTSECRETSTRING",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustBuild(t, tc.s)
			got, err := m.Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != tc.want {
				t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncode_DoubleStep(t *testing.T) {
	// Rotor II (notch E) on the right carries on the 2nd key press, bringing
	// rotor III onto its notch V; on the 3rd press III steps again by itself.
	m := mustBuild(t, Settings{Rotors: []string{"I", "III", "II"}, Positions: "AUD", Rings: []int{1, 1, 1}, Reflector: "B"})
	var windows []string
	for i := 0; i < 3; i++ {
		if _, err := m.EncodeLetter('A'); err != nil {
			t.Fatal(err)
		}
		windows = append(windows, m.Windows())
	}
	want := []string{"AUE", "AVF", "BWG"}
	if diff := cmp.Diff(want, windows); diff != "" {
		t.Errorf("window sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_ClassicDoubleStep(t *testing.T) {
	m := mustBuild(t, Settings{Rotors: []string{"I", "II", "III"}, Positions: "ADU", Rings: []int{1, 1, 1}, Reflector: "B"})
	var windows []string
	for i := 0; i < 3; i++ {
		if _, err := m.EncodeLetter('A'); err != nil {
			t.Fatal(err)
		}
		windows = append(windows, m.Windows())
	}
	if diff := cmp.Diff([]string{"ADV", "AEW", "BFX"}, windows); diff != "" {
		t.Errorf("window sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_FourthRotorNeverSteps(t *testing.T) {
	m := mustBuild(t, Settings{Rotors: []string{"Beta", "I", "II", "III"}, Positions: "AADU", Rings: []int{1, 1, 1, 1}, Reflector: "B"})
	for i := 0; i < 600; i++ {
		if _, err := m.EncodeLetter('Q'); err != nil {
			t.Fatal(err)
		}
		if w := m.Windows(); w[0] != 'A' {
			t.Fatalf("press %d: fourth rotor moved to %c", i+1, w[0])
		}
	}
}

func TestEncode_SelfReciprocalPerLetter(t *testing.T) {
	s := Settings{
		Rotors: []string{"II", "IV", "V"}, Positions: "BLQ", Rings: []int{3, 19, 26}, Reflector: "A",
		Plugs: []string{"AZ", "QE", "MN"},
	}
	for c := 0; c < alphabet.Size; c++ {
		in := string(alphabet.Letter(c))
		out, err := mustBuild(t, s).Encode(in)
		if err != nil {
			t.Fatal(err)
		}
		if out == in {
			t.Errorf("%s encoded to itself", in)
		}
		back, err := mustBuild(t, s).Encode(out)
		if err != nil {
			t.Fatal(err)
		}
		if back != in {
			t.Errorf("%s -> %s -> %s, want round trip", in, out, back)
		}
	}
}

func TestEncode_DecryptsOwnOutput(t *testing.T) {
	s := Settings{Rotors: []string{"III", "I", "II"}, Positions: "XYZ", Rings: []int{12, 1, 9}, Reflector: "C", Plugs: []string{"PO", "ML"}}
	plain := strings.Repeat("WEATHERREPORT", 40)
	cipher, err := mustBuild(t, s).Encode(plain)
	if err != nil {
		t.Fatal(err)
	}
	got, err := mustBuild(t, s).Encode(cipher)
	if err != nil {
		t.Fatal(err)
	}
	if got != plain {
		t.Errorf("decrypt mismatch:\n got %s\nwant %s", got, plain)
	}
}

func TestEncode_ResetIsIdempotent(t *testing.T) {
	m := mustBuild(t, Settings{Rotors: []string{"I", "II", "III"}, Positions: "ADU", Rings: []int{1, 1, 1}, Reflector: "B"})
	first, err := m.Encode("HELLOWORLDHELLOWORLD")
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Encode("HELLOWORLDHELLOWORLD")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("second pass %q differs from first %q", second, first)
	}
	if m.Windows() != "ADU" {
		t.Errorf("Windows after Encode = %s, want ADU", m.Windows())
	}
}

func TestEncode_MissingRotors(t *testing.T) {
	refl, _ := NewReflector("B")
	m := New(nil, refl)
	for _, name := range []string{"I", "II"} {
		r, _ := NewRotor(name, 'A', 1)
		if err := m.AddRotor(r); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.Encode("A"); !errors.Is(err, ErrMissingRotors) {
		t.Fatalf("err = %v, want ErrMissingRotors", err)
	}
}

func TestAddRotor_DrumFull(t *testing.T) {
	refl, _ := NewReflector("B")
	m := New(nil, refl)
	for i := 0; i < MaxRotors; i++ {
		r, _ := NewRotor("I", 'A', 1)
		if err := m.AddRotor(r); err != nil {
			t.Fatal(err)
		}
	}
	r, _ := NewRotor("II", 'A', 1)
	if err := m.AddRotor(r); !errors.Is(err, ErrDrumFull) {
		t.Fatalf("err = %v, want ErrDrumFull", err)
	}
}

func TestEncode_InvalidLetter(t *testing.T) {
	m := mustBuild(t, Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAA", Rings: []int{1, 1, 1}, Reflector: "B"})
	if _, err := m.Encode("AB C"); !errors.Is(err, ErrInvalidLetter) {
		t.Fatalf("err = %v, want ErrInvalidLetter", err)
	}
	if m.Windows() != "AAA" {
		t.Errorf("Windows after failed Encode = %s, want AAA", m.Windows())
	}
}

func TestBuild_Errors(t *testing.T) {
	base := Settings{Rotors: []string{"I", "II", "III"}, Positions: "AAA", Rings: []int{1, 1, 1}, Reflector: "B"}
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"two rotors", func(s *Settings) { s.Rotors = s.Rotors[:2]; s.Positions = "AA"; s.Rings = s.Rings[:2] }, ErrMissingRotors},
		{"five rotors", func(s *Settings) {
			s.Rotors = []string{"I", "II", "III", "IV", "V"}
			s.Positions = "AAAAA"
			s.Rings = []int{1, 1, 1, 1, 1}
		}, ErrDrumFull},
		{"bad reflector", func(s *Settings) { s.Reflector = "D" }, ErrUnknownReflector},
		{"bad rotor", func(s *Settings) { s.Rotors = []string{"I", "II", "IX"} }, ErrUnknownRotor},
		{"bad lead", func(s *Settings) { s.Plugs = []string{"AA"} }, ErrInvalidLead},
		{"reused plug letter", func(s *Settings) { s.Plugs = []string{"AB", "AC"} }, ErrLetterInUse},
		{"lead cap", func(s *Settings) { s.Plugs = []string{"AB", "CD"}; s.MaxLeads = 1 }, ErrCapacityExceeded},
		{"short wiring", func(s *Settings) { s.ReflectorPairs = []string{"AB"} }, ErrInvalidReflectorWiring},
		{"bad ring", func(s *Settings) { s.Rings = []int{1, 30, 1} }, ErrInvalidRingSetting},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := base.Clone()
			tc.mutate(&s)
			if _, err := Build(s); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuild_CustomReflectorPairs(t *testing.T) {
	s := Settings{Rotors: []string{"V", "II", "IV"}, Positions: "AJL", Rings: []int{6, 18, 7}, Reflector: "B",
		Plugs:          []string{"UG", "IE", "PO", "NX", "WT"},
		ReflectorPairs: []string{"IY", "ER", "BQ", "AP", "CU", "DH", "FS", "GL", "JX", "KN", "MO", "TZ", "VW"},
	}
	got, err := mustBuild(t, s).Encode("HWREISXLGTTBYVXRCWWJAKZDTVZWKBDJPVQYNEQIOTIFX")
	if err != nil {
		t.Fatal(err)
	}
	if want := "YOUCANFOLLOWMYDOGONINSTAGRAMATTALESOFHOFFMANN"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseHelpers(t *testing.T) {
	rings, err := ParseRings("04,02 14")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 2, 14}, rings); diff != "" {
		t.Errorf("ParseRings mismatch:\n%s", diff)
	}
	if _, err := ParseRings("04,x"); !errors.Is(err, ErrInvalidRingSetting) {
		t.Errorf("ParseRings err = %v", err)
	}
	if diff := cmp.Diff([]string{"KI", "XN", "FL"}, ParsePlugs("ki xn,fl")); diff != "" {
		t.Errorf("ParsePlugs mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Beta", "Gamma", "V"}, ParseRotors("beta,GAMMA,v")); diff != "" {
		t.Errorf("ParseRotors mismatch:\n%s", diff)
	}
}
