package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// listCmd is registered as "list_cards" by the manager and "list" by the
// remote wallet.
type listCmd struct {
	name string
}

func (c *listCmd) Name() string   { return c.name }
func (*listCmd) Synopsis() string { return "list all cards" }
func (c *listCmd) Usage() string {
	return c.name + `

  Lists every card of the wallet file in file order. Listing does not count
  as a view.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 0, c.name) {
		return subcommands.ExitFailure
	}
	cur, err := displayCurrency()
	if err != nil {
		return fail(err)
	}
	cards, err := newTeller().List()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Cards(cards, cur))
	return subcommands.ExitSuccess
}
