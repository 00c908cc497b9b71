// Package main is the entry point for the quire editor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iw2rmb/quire/internal/cli"
	"github.com/iw2rmb/quire/internal/logging"
)

// Build-time variables set with -ldflags.
var (
	commit = "none"
	date   = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.BuildInfo{Commit: commit, Date: date})
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		fmt.Fprintln(os.Stderr, "quire:", err)
		return 1
	}
	return 0
}
