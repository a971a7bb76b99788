// Package main is the entry point for the sogou-translate command.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pricofy/sogou-translate/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
