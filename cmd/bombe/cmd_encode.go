package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bombe/internal/alphabet"
	"bombe/internal/display"
	"bombe/internal/machine"
)

var encodeFlags struct {
	rotors    string
	reflector string
	rings     string
	positions string
	plugs     string
	maxLeads  int
	group     bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode [TEXT...]",
	Short: "Encipher or decipher text with explicit machine settings",
	Long: `Encode runs text through a machine built from the flags. The machine is
reciprocal, so the same settings decipher the output again. Text is read from
the arguments, or from stdin when none are given.

Lists run from the leftmost rotor to the rightmost:

  bombe encode --rotors I,II,III --reflector B --rings 01,01,01 --positions AAA AAAAA`,
	RunE: runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeFlags.rotors, "rotors", "I,II,III", "Rotor types, leftmost first (3 or 4)")
	f.StringVar(&encodeFlags.reflector, "reflector", "B", "Reflector type (A, B or C)")
	f.StringVar(&encodeFlags.rings, "rings", "", "Ring settings 1-26, leftmost first (default all 01)")
	f.StringVar(&encodeFlags.positions, "positions", "", "Starting window letters, leftmost first (default all A)")
	f.StringVar(&encodeFlags.plugs, "plugs", "", "Plugboard pairs (e.g. \"KI XN FL\")")
	f.IntVar(&encodeFlags.maxLeads, "max-leads", machine.DefaultMaxLeads, "Plugboard lead capacity")
	f.BoolVar(&encodeFlags.group, "group", false, "Print output in groups of five letters")
}

func runEncode(cmd *cobra.Command, args []string) error {
	s, err := encodeSettings()
	if err != nil {
		return err
	}
	m, err := machine.Build(s)
	if err != nil {
		return err
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	if !alphabet.Valid(text) {
		return fmt.Errorf("text must be letters A-Z, got %q", text)
	}
	out, err := m.Encode(text)
	if err != nil {
		return err
	}
	if encodeFlags.group {
		out = display.Letters(out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func encodeSettings() (machine.Settings, error) {
	rotors := machine.ParseRotors(encodeFlags.rotors)
	n := len(rotors)

	rings := make([]int, n)
	for i := range rings {
		rings[i] = 1
	}
	if encodeFlags.rings != "" {
		var err error
		if rings, err = machine.ParseRings(encodeFlags.rings); err != nil {
			return machine.Settings{}, err
		}
	}
	positions := strings.Repeat("A", n)
	if encodeFlags.positions != "" {
		positions = strings.ToUpper(strings.Join(strings.Fields(encodeFlags.positions), ""))
	}
	return machine.Settings{
		Rotors:    rotors,
		Positions: positions,
		Rings:     rings,
		Reflector: encodeFlags.reflector,
		Plugs:     machine.ParsePlugs(encodeFlags.plugs),
		MaxLeads:  encodeFlags.maxLeads,
	}, nil
}

func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return cleanText(args), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return cleanText([]string{string(data)}), nil
}
