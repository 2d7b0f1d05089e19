package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/etnz/wallet"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// cardArgs is embedded by commands whose arguments are card numbers. It
// predicts the numbers found in the wallet file.
type cardArgs struct{}

func (cardArgs) Predict(prefix string) []string { return cardNumbers(*walletFile, prefix) }

// cardNumbers reads the wallet file without creating it and returns the card
// numbers starting with prefix.
func cardNumbers(path, prefix string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	w, err := wallet.DecodeWallet(f, log.New(io.Discard))
	if err != nil {
		return nil
	}
	var numbers []string
	for c := range w.Cards() {
		if strings.HasPrefix(c.Number(), prefix) {
			numbers = append(numbers, c.Number())
		}
	}
	return numbers
}

// completion describes cmds and the global flags for the shell.
func completion(cmds []subcommands.Command) *complete.Command {
	sub := map[string]*complete.Command{
		"help":     {Args: predict.Nothing},
		"flags":    {Args: predict.Nothing},
		"commands": {Args: predict.Nothing},
	}
	for _, c := range cmds {
		var args complete.Predictor = predict.Nothing
		if p, ok := c.(complete.Predictor); ok {
			args = p
		}
		sub[c.Name()] = &complete.Command{Args: args}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"wallet-file":  predict.Files("*.csv"),
			"journal-file": predict.Files("*"),
			"currency":     predict.Something,
			"v":            predict.Nothing,
			"plain":        predict.Nothing,
		},
	}
}

// Complete answers a shell completion request for the program name and exits,
// or returns immediately when the program was not run by the shell.
//
// Install the completion with:
//
//	COMP_INSTALL=1 walletmgr
func Complete(name string, cmds []subcommands.Command) {
	completion(cmds).Complete(name)
}
