package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store reads and writes a Wallet to a single CSV file.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore returns a Store for the wallet file at path. Decoding warnings are
// reported on logger, or on the default logger if nil.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the wallet file path.
func (s *Store) Path() string { return s.path }

// Load decodes the wallet file.
//
// A missing file is not an error: it is created with only the header line
// and an empty wallet is returned.
func (s *Store) Load() (*Wallet, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, err
		}
		s.logger.Info("created new wallet file", "path", s.path)
		return NewWallet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open wallet file %q: %w", s.path, err)
	}
	defer f.Close()

	w, err := DecodeWallet(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("could not decode wallet file %q: %w", s.path, err)
	}
	return w, nil
}

func (s *Store) create() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not create wallet file %q: %w", s.path, err)
	}
	if _, err := fmt.Fprintln(f, Header); err != nil {
		f.Close()
		return fmt.Errorf("could not write wallet file %q: %w", s.path, err)
	}
	return f.Close()
}

// Save overwrites the wallet file with the full content of w.
//
// The content is written to a temporary file in the same directory which is
// then renamed over the wallet file, so the file is either fully replaced or
// left as it was. The wallet itself is never modified.
func (s *Store) Save(w *Wallet) error {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not open wallet file %q for writing: %w", s.path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeWallet(tmp, w); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write wallet file %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write wallet file %q: %w", s.path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write wallet file %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace wallet file %q: %w", s.path, err)
	}
	return nil
}
