package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCardCmd struct{}

func (*addCardCmd) Name() string     { return "add_card" }
func (*addCardCmd) Synopsis() string { return "add a new card with an empty balance" }
func (*addCardCmd) Usage() string {
	return `add_card <cardName> <number> <ownerName> <expDate>

  Appends a card to the wallet file. The number and the owner are required.
  Numbers are not checked for uniqueness.
`
}

func (*addCardCmd) SetFlags(f *flag.FlagSet) {}

func (*addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 4, "add_card <cardName> <number> <ownerName> <expDate>") {
		return subcommands.ExitFailure
	}
	if _, err := newTeller().AddCard(f.Arg(0), f.Arg(1), f.Arg(2), f.Arg(3)); err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, "Success: Card added.")
	return subcommands.ExitSuccess
}
