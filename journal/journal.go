package journal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/etnz/wallet"
	"github.com/google/uuid"
)

// Journal appends entries to a transaction log file.
type Journal struct {
	path  string
	now   func() time.Time
	newID func() string
}

// New returns a Journal writing to the file at path. The file is created on
// first use.
func New(path string) *Journal {
	return &Journal{
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Path returns the log file path.
func (j *Journal) Path() string { return j.path }

// Record appends one line per entry, all stamped with the same time and
// reference.
func (j *Journal) Record(entries ...wallet.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	ts := j.now().Format(time.ANSIC)
	ref := j.newID()

	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "%s : Card: %s, Type: %s, Amount: %s, Ref: %s\n", ts, e.Card, e.Operation, e.Amount.Exact(), ref)
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open transaction log %q: %w", j.path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("could not write transaction log %q: %w", j.path, err)
	}
	return f.Close()
}

// Lines returns the log content line by line, oldest first. A log that was
// never written is empty.
func (j *Journal) Lines() ([]string, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open transaction log %q: %w", j.path, err)
	}
	defer f.Close()

	var lines []string
	br := bufio.NewReader(f)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimSuffix(line, "\n"); line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read transaction log %q: %w", j.path, err)
		}
	}
	return lines, nil
}
