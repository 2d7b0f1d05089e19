package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "rewrite the wallet file in canonical form" }
func (*saveCmd) Usage() string {
	return `save

  Loads the wallet file and writes it back. Malformed lines are dropped and
  amounts are written with two decimals.
`
}

func (*saveCmd) SetFlags(f *flag.FlagSet) {}

func (*saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 0, "save") {
		return subcommands.ExitFailure
	}
	if err := newTeller().Save(); err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, "Success: Database saved.")
	return subcommands.ExitSuccess
}
