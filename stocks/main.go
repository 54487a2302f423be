// Command stocks analyzes a table of daily closing prices and reports on it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/stocks/cmd"
	"github.com/google/subcommands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
	}
	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("stocks")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogger(*cmd.Verbose)
	os.Exit(int(commander.Execute(ctx)))
}
