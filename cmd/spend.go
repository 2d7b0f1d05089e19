package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type spendCmd struct{ cardArgs }

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "deduct money from a card" }
func (*spendCmd) Usage() string {
	return `spend <number> <amount>

  Takes a strictly positive amount from the card balance and records a USE
  entry in the transaction log. The balance can never go negative.
`
}

func (*spendCmd) SetFlags(f *flag.FlagSet) {}

func (*spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 2, "spend <number> <amount>") {
		return subcommands.ExitFailure
	}
	cur, err := displayCurrency()
	if err != nil {
		return fail(err)
	}
	number, amount := f.Arg(0), f.Arg(1)
	c, err := newTeller().Spend(number, amount)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Success: Spent %s from card %s. Balance: %s\n", amount, number, c.Balance().Format(cur))
	return subcommands.ExitSuccess
}
