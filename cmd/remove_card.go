package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCardCmd struct{ cardArgs }

func (*removeCardCmd) Name() string     { return "remove_card" }
func (*removeCardCmd) Synopsis() string { return "remove a card from the wallet" }
func (*removeCardCmd) Usage() string {
	return `remove_card <number>

  Removes every card with this number from the wallet file.
`
}

func (*removeCardCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 1, "remove_card <number>") {
		return subcommands.ExitFailure
	}
	n, err := newTeller().RemoveCard(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Success: Removed %d card(s).\n", n)
	return subcommands.ExitSuccess
}
