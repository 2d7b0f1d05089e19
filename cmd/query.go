package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/wallet"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the cards" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Evaluates the expression against the array of cards and prints the result
  as JSON. Card fields are named like the wallet file header.

Usage Examples:
# Numbers of the cards holding more than 10.
$ walletmgr query '$[?(@.moneyAmount > 10)].cardNumber'

`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 1, "query <jsonpath>") {
		return subcommands.ExitFailure
	}
	w, err := newTeller().Wallet()
	if err != nil {
		return fail(err)
	}
	val, err := wallet.Query(w, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
