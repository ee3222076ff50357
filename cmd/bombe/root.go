package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bombe/internal/format"
	"bombe/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
	markdown  bool
}

var rootCmd = &cobra.Command{
	Use:   "bombe",
	Short: "Rotor cipher machine with a crib-driven settings search",
	Long: `Bombe simulates a three- or four-rotor cipher machine with historically
faithful double stepping, and recovers unknown settings (starting positions,
reflector, rotors and ring settings, missing plugboard partners, rewired
reflector pairs) from a known plaintext fragment.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		f, err := logging.ParseFormat(rootFlags.logFormat)
		if err != nil {
			return err
		}
		logging.Init(level, f, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")
	pf.BoolVar(&rootFlags.markdown, "markdown", false, "Render tables as Markdown instead of box drawing")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func tableMode() format.Mode {
	if rootFlags.markdown {
		return format.Markdown
	}
	return format.ASCII
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
