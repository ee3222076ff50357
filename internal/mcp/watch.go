package mcp

import (
	"context"
	"os"
	"time"

	"bombe/internal/logging"
)

// ParentPollInterval is how often WatchParent checks the parent PID.
var ParentPollInterval = 2 * time.Second

// WatchParent monitors for parent process death in a background goroutine.
// When the parent PID changes (the MCP client exited without closing the
// pipe), it calls cancelFn so the server shuts down instead of lingering.
//
// It must not read from stdin: the SDK's StdioTransport owns it, and stolen
// bytes would corrupt the JSON-RPC stream.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	watchPID(ctx, os.Getppid(), os.Getppid, cancelFn)
}

func watchPID(ctx context.Context, ppid int, current func() int, cancelFn context.CancelFunc) {
	logger := logging.New("mcp")
	interval := ParentPollInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if current() != ppid {
					logger.Warn("parent process died, shutting down", "parent_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
