package main

import (
	"context"

	"github.com/spf13/cobra"

	"bombe/internal/logging"
	mcpserver "bombe/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the list_scenarios, encode
and break tools.

The server monitors for parent process death and exits when the client goes
away without closing the pipe.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := mcpserver.NewServer(version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting bombe MCP server over stdio (parent watchdog active)")
	return srv.Run(ctx)
}
