package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/wallet/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(flag.CommandLine, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := path.Base(os.Args[0])
	commands := cmd.ManagerCommands()
	cmd.Complete(name, commands)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander, commands)

	flag.Parse()
	status := commander.Execute(context.Background())
	// Unknown commands and missing arguments fail like any other error.
	if status == subcommands.ExitUsageError {
		status = subcommands.ExitFailure
	}
	os.Exit(int(status))
}
