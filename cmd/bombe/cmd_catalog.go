package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bombe/internal/format"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the rotor and reflector types",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), format.CatalogTable(tableMode()))
		return nil
	},
}
