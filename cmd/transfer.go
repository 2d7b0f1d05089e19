package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type transferCmd struct{ cardArgs }

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two cards" }
func (*transferCmd) Usage() string {
	return `transfer <from> <to> <amount>

  Moves a strictly positive amount from one card to another and records a
  TRANSFER_OUT and a TRANSFER_IN entry in the transaction log. Both cards must
  exist and be different.
`
}

func (*transferCmd) SetFlags(f *flag.FlagSet) {}

func (*transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 3, "transfer <from> <to> <amount>") {
		return subcommands.ExitFailure
	}
	from, to, amount := f.Arg(0), f.Arg(1), f.Arg(2)
	if err := newTeller().Transfer(from, to, amount); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Success: Transferred %s from %s to %s.\n", amount, from, to)
	return subcommands.ExitSuccess
}
