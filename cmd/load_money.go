package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type loadMoneyCmd struct{ cardArgs }

func (*loadMoneyCmd) Name() string     { return "load_money" }
func (*loadMoneyCmd) Synopsis() string { return "load money onto a card" }
func (*loadMoneyCmd) Usage() string {
	return `load_money <number> <amount>

  Adds a strictly positive amount to the card balance and records a LOAD
  entry in the transaction log.
`
}

func (*loadMoneyCmd) SetFlags(f *flag.FlagSet) {}

func (*loadMoneyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 2, "load_money <number> <amount>") {
		return subcommands.ExitFailure
	}
	cur, err := displayCurrency()
	if err != nil {
		return fail(err)
	}
	number, amount := f.Arg(0), f.Arg(1)
	c, err := newTeller().LoadMoney(number, amount)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Success: Loaded %s onto card %s. Balance: %s\n", amount, number, c.Balance().Format(cur))
	return subcommands.ExitSuccess
}
