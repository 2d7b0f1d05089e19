package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables providing defaults for the global flags.
const (
	EnvWalletFile  = "WALLET_FILE"
	EnvJournalFile = "WALLET_JOURNAL_FILE"
	EnvCurrency    = "WALLET_CURRENCY"
	EnvVerbose     = "WALLET_VERBOSE"
)

var envFlags = []struct{ env, flag string }{
	{EnvWalletFile, "wallet-file"},
	{EnvJournalFile, "journal-file"},
	{EnvCurrency, "currency"},
	{EnvVerbose, "v"},
}

// LoadEnv sets the global flags of set from the environment, falling back to
// the dotenv file. It must run before set is parsed so that command line flags
// still win. A missing dotenv file is ignored.
func LoadEnv(set *flag.FlagSet, dotenv string) error {
	values, err := godotenv.Read(dotenv)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not read %q: %w", dotenv, err)
	}
	for _, e := range envFlags {
		v, ok := os.LookupEnv(e.env)
		if !ok {
			v, ok = values[e.env]
		}
		if !ok {
			continue
		}
		if err := set.Set(e.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", e.env, v, err)
		}
	}
	return nil
}
