// Package cmd implements the command line applications managing a card wallet.
//
// The wallet manager administers cards (add, view, list, load, save) and the
// remote wallet moves money (spend, transfer). Both share the global flags
// declared here.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/wallet"
	"github.com/etnz/wallet/journal"
	"github.com/google/subcommands"
)

// ManagerCommands returns the commands of the wallet manager.
func ManagerCommands() []subcommands.Command {
	return []subcommands.Command{
		&addCardCmd{},
		&viewCardCmd{},
		&listCmd{name: "list_cards"},
		&loadMoneyCmd{},
		&saveCmd{},
		&removeCardCmd{},
		&historyCmd{},
		&queryCmd{},
		&topicCmd{},
	}
}

// RemoteCommands returns the commands of the remote wallet.
func RemoteCommands() []subcommands.Command {
	return []subcommands.Command{
		&spendCmd{},
		&transferCmd{},
		&viewCardCmd{},
		&listCmd{name: "list"},
		&historyCmd{},
		&topicCmd{},
	}
}

// Register the builtins and cmds on c.
func Register(c *subcommands.Commander, cmds []subcommands.Command) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range cmds {
		c.Register(cmd, "cards")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var walletFile = flag.String("wallet-file", "cards.csv", "Path to the wallet file (CSV format)")
var journalFile = flag.String("journal-file", "transactions.txt", "Path to the transaction log file")
var currency = flag.String("currency", "", "Currency code used to display amounts, plain numbers if empty")
var verbose = flag.Bool("v", false, "Enable debug logging")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Logger returns the application logger, writing to stderr.
func Logger() *log.Logger {
	level := log.WarnLevel
	if *verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(stderr, log.Options{
		Level:  level,
		Prefix: path.Base(os.Args[0]),
	})
}

// newTeller opens the wallet and journal files named by the global flags.
func newTeller() *wallet.Teller {
	logger := Logger()
	logger.Debug("opening wallet", "wallet", *walletFile, "journal", *journalFile)
	return wallet.NewTeller(wallet.NewStore(*walletFile, logger), journal.New(*journalFile), logger)
}

// displayCurrency validates the -currency flag.
func displayCurrency() (string, error) {
	if *currency != "" && !wallet.KnownCurrency(*currency) {
		return "", fmt.Errorf("unknown currency %q", *currency)
	}
	return *currency, nil
}

// printMarkdown renders md for the terminal, unless -plain is set.
func printMarkdown(md string) {
	if !*plain {
		out, err := glamour.Render(md, "auto")
		if err == nil {
			md = out
		} else {
			Logger().Debug("could not render markdown", "err", err)
		}
	}
	fmt.Fprint(stdout, md)
}

// fail prints err on stderr, one "Error:" line per line of the message, and
// returns the failure status.
func fail(err error) subcommands.ExitStatus {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(stderr, "Error: %s\n", line)
	}
	return subcommands.ExitFailure
}

// exactArgs reports whether f has exactly n positional arguments, printing
// usage otherwise.
func exactArgs(f *flag.FlagSet, n int, usage string) bool {
	if f.NArg() != n {
		fmt.Fprintf(stderr, "Usage: %s\n", usage)
		return false
	}
	return true
}
