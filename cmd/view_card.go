package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type viewCardCmd struct{ cardArgs }

func (*viewCardCmd) Name() string     { return "view_card" }
func (*viewCardCmd) Synopsis() string { return "display a card and count the view" }
func (*viewCardCmd) Usage() string {
	return `view_card <number>

  Displays the first card with this number. Every successful view increments
  the card's view count in the wallet file.
`
}

func (*viewCardCmd) SetFlags(f *flag.FlagSet) {}

func (*viewCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 1, "view_card <number>") {
		return subcommands.ExitFailure
	}
	cur, err := displayCurrency()
	if err != nil {
		return fail(err)
	}
	c, err := newTeller().ViewCard(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Card(c, cur))
	return subcommands.ExitSuccess
}
