package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bombe/internal/machine"
)

func testdataPath(name string) string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "testdata", name)
}

func TestLoadTask_YAMLAllKnown(t *testing.T) {
	task, err := LoadTask(testdataPath("secrets.yaml"))
	if err != nil {
		t.Fatalf("LoadTask: %v", err)
	}
	if !task.Rotors.IsKnown() || !task.Reflector.IsKnown() || !task.Rings.IsKnown() ||
		!task.Positions.IsKnown() || !task.Plugboard.IsKnown() {
		t.Fatalf("expected every category known: %+v", task)
	}
	want := machine.Settings{
		Rotors:    []string{"Beta", "Gamma", "V"},
		Positions: "MJM",
		Rings:     []int{4, 2, 14},
		Reflector: "C",
		Plugs:     []string{"KI", "XN", "FL"},
	}
	if diff := cmp.Diff(want, task.Baseline()); diff != "" {
		t.Errorf("Baseline mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadTask_JSONNullMarksUnknown(t *testing.T) {
	task, err := LoadTask(testdataPath("university.json"))
	if err != nil {
		t.Fatalf("LoadTask: %v", err)
	}
	if !task.Positions.IsUnknown() {
		t.Errorf("positions state = %s, want unknown", task.Positions.State())
	}
	if got := task.Baseline().Positions; got != "AAA" {
		t.Errorf("baseline positions = %q, want AAA", got)
	}
	if diff := cmp.Diff([]int{23, 2, 10}, task.Rings.Value()); diff != "" {
		t.Errorf("rings mismatch:\n%s", diff)
	}
}

func TestLoad_DetectsFormat(t *testing.T) {
	y := []byte("code: ABC\nrotors: [I, II, III]\n")
	f, err := Load(y, "")
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if f.Code != "ABC" || len(f.Rotors) != 3 {
		t.Errorf("yaml: got %+v", f)
	}
	j := []byte(`{"code": "ABC", "ring_settings": ["01", 2, "26"]}`)
	f, err = Load(j, "")
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if diff := cmp.Diff([]RingSetting{1, 2, 26}, f.RingSettings); diff != "" {
		t.Errorf("json rings mismatch:\n%s", diff)
	}
	if _, err := Load(y, ".toml"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestRingSetting_YAMLUnquotedLeadingZero(t *testing.T) {
	f, err := Load([]byte("code: ABC\nring_settings: [04, 08, 26]\n"), ".yml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]RingSetting{4, 8, 26}, f.RingSettings); diff != "" {
		t.Errorf("rings mismatch:\n%s", diff)
	}
}

func TestNormalize_Canonicalizes(t *testing.T) {
	f := File{
		Code:              "dmexb mkycv",
		Crib:              "secrets",
		Rotors:            []string{"beta", "GAMMA", "v"},
		Reflector:         "c",
		StartingPositions: []string{"m", "j", "m"},
		Plugboard:         []string{"ki"},
	}
	task, err := Normalize(f)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if task.Code != "DMEXBMKYCV" || task.Crib != "SECRETS" {
		t.Errorf("code/crib = %q/%q", task.Code, task.Crib)
	}
	if diff := cmp.Diff([]string{"Beta", "Gamma", "V"}, task.Rotors.Value()); diff != "" {
		t.Errorf("rotors mismatch:\n%s", diff)
	}
	if task.Positions.Value() != "MJM" || task.Reflector.Value() != "C" {
		t.Errorf("positions/reflector = %q/%q", task.Positions.Value(), task.Reflector.Value())
	}
	if f.Rotors[0] != "beta" {
		t.Error("Normalize modified the caller's record")
	}
}

func TestNormalize_PartialPlugboard(t *testing.T) {
	task, err := Normalize(File{Code: "ABC", Plugboard: []string{"WP", "RJ", "A", "I"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !task.Plugboard.IsPartial() {
		t.Fatalf("plugboard state = %s, want partial", task.Plugboard.State())
	}
	want := Plugs{Pairs: []string{"WP", "RJ"}, Singles: []byte{'A', 'I'}}
	if diff := cmp.Diff(want, task.Plugboard.Value()); diff != "" {
		t.Errorf("plugs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"WP", "RJ"}, task.Baseline().Plugs); diff != "" {
		t.Errorf("baseline plugs mismatch:\n%s", diff)
	}
}

func TestNormalize_UnknownDefaults(t *testing.T) {
	task, err := Normalize(File{Code: "ABC", Crib: "X", StartingPositions: []string{"E", "M", "Y"}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !task.Rotors.IsUnknown() || !task.Rings.IsUnknown() || !task.Reflector.IsUnknown() {
		t.Fatalf("expected rotors, rings, reflector unknown")
	}
	if diff := cmp.Diff(DefaultRingCandidates, task.RingCandidates); diff != "" {
		t.Errorf("ring candidates mismatch:\n%s", diff)
	}
	if diff := cmp.Diff(DefaultRotorCandidates, task.RotorCandidates); diff != "" {
		t.Errorf("rotor candidates mismatch:\n%s", diff)
	}
	want := machine.Settings{Rotors: []string{"I", "II", "III"}, Positions: "EMY", Rings: []int{1, 1, 1}, Reflector: "B"}
	if diff := cmp.Diff(want, task.Baseline()); diff != "" {
		t.Errorf("Baseline mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_FourRotorDefaults(t *testing.T) {
	task, err := Normalize(File{Code: "ABC", StartingPositions: []string{"A", "B", "C", "D"}})
	if err != nil {
		t.Fatal(err)
	}
	if task.RotorCount != 4 {
		t.Fatalf("RotorCount = %d, want 4", task.RotorCount)
	}
	if diff := cmp.Diff([]string{"Beta", "I", "II", "III"}, task.Baseline().Rotors); diff != "" {
		t.Errorf("default rotors mismatch:\n%s", diff)
	}
}

func TestNormalize_RewiredUsesCribCatalog(t *testing.T) {
	task, err := Normalize(File{Code: "ABC", Crib: "UNKNOWN", Reflector: "B", ReflectorRewired: 4})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultCribs, task.Targets()); diff != "" {
		t.Errorf("targets mismatch:\n%s", diff)
	}
	plain, _ := Normalize(File{Code: "ABC", Crib: "SECRETS", Cribs: []string{"EXTRA"}})
	if diff := cmp.Diff([]string{"SECRETS", "EXTRA"}, plain.Targets()); diff != "" {
		t.Errorf("targets mismatch:\n%s", diff)
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name string
		f    File
		msg  string
	}{
		{"missing code", File{}, "Code is required"},
		{"digits in code", File{Code: "ABC1"}, "Code must contain only letters"},
		{"unknown rotor", File{Code: "ABC", Rotors: []string{"I", "II", "VII"}}, "unknown rotor"},
		{"unknown reflector", File{Code: "ABC", Reflector: "D"}, "unknown reflector"},
		{"two rotors", File{Code: "ABC", Rotors: []string{"I", "II"}}, "Rotors fails min=3"},
		{"ring out of range", File{Code: "ABC", RingSettings: []RingSetting{1, 27, 3}}, "max=26"},
		{"long position", File{Code: "ABC", StartingPositions: []string{"AB", "C", "D"}}, "len=1"},
		{"count mismatch", File{Code: "ABC", Rotors: []string{"I", "II", "III"}, StartingPositions: []string{"A", "B", "C", "D"}}, "starting_positions lists 4"},
		{"reused plug letter", File{Code: "ABC", Plugboard: []string{"AB", "A"}}, "used twice"},
		{"plug cap", File{Code: "ABC", MaxLeads: 1, Plugboard: []string{"AB", "CD"}}, "exceed the cap"},
		{"empty plug", File{Code: "ABC", Plugboard: []string{""}}, "Plugboard[0]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.f)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}

func TestSetting_States(t *testing.T) {
	k := KnownValue("B")
	u := UnknownValue[string]()
	p := PartialValue(Plugs{Singles: []byte{'A'}})
	if !k.IsKnown() || k.Value() != "B" || k.State().String() != "known" {
		t.Errorf("known: %+v", k)
	}
	if !u.IsUnknown() || u.Value() != "" || u.State().String() != "unknown" {
		t.Errorf("unknown: %+v", u)
	}
	if !p.IsPartial() || p.State().String() != "partial" {
		t.Errorf("partial: %+v", p)
	}
}

func TestRingSetting_MarshalTwoDigits(t *testing.T) {
	b, err := RingSetting(4).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"04"` {
		t.Errorf("MarshalJSON = %s, want \"04\"", b)
	}
}

func TestRecordValidate_CatalogTags(t *testing.T) {
	tests := []struct{ tag, ok, bad string }{
		{"rotor", "Gamma", "VII"},
		{"reflector", "c", "D"},
	}
	for _, tc := range tests {
		if err := recordValidate.Var(tc.ok, tc.tag); err != nil {
			t.Errorf("%s %q: %v", tc.tag, tc.ok, err)
		}
		if err := recordValidate.Var(tc.bad, tc.tag); err == nil {
			t.Errorf("%s %q: expected a validation error", tc.tag, tc.bad)
		}
	}
}
