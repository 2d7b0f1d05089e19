package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wallet/journal"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the transaction log" }
func (*historyCmd) Usage() string {
	return `history

  Prints every line of the transaction log, oldest first.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (*historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !exactArgs(f, 0, "history") {
		return subcommands.ExitFailure
	}
	lines, err := journal.New(*journalFile).Lines()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.History(lines))
	return subcommands.ExitSuccess
}
