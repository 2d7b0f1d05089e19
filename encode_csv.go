package wallet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// Header is the mandatory first line of a wallet file.
const Header = "cardName,cardNumber,name,expirationDate,moneyAmount,viewCount"

const columns = 6

// DecodeWallet reads a wallet file from r.
//
// The first line is the header and is discarded without validation. Data
// lines are split on every comma, quoting is not supported so a field that
// contains a comma makes its line malformed. Decoding is best-effort: blank
// lines are ignored, and a line with the wrong number of columns or with a
// non numeric or out of range amount, or a non numeric view count, is skipped
// with a warning on logger.
// Negative amounts and view counts are clamped to zero.
//
// Only read errors from r are returned.
func DecodeWallet(r io.Reader, logger *log.Logger) (*Wallet, error) {
	if logger == nil {
		logger = log.Default()
	}
	w := NewWallet()
	br := bufio.NewReader(r)

	// Lines have no length limit.
	for lineNumber := 1; ; lineNumber++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not read wallet line %d: %w", lineNumber, err)
		}
		if lineNumber > 1 {
			decodeLine(w, line, lineNumber, logger)
		}
		if err != nil {
			return w, nil
		}
	}
}

// decodeLine adds the card of a data line to w, or warns and skips it.
func decodeLine(w *Wallet, line string, lineNumber int, logger *log.Logger) {
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if line == "" {
		return
	}

	row := strings.Split(line, ",")
	if len(row) != columns {
		logger.Warn("skipping malformed line", "line", lineNumber, "columns", len(row), "expected", columns)
		return
	}

	card, err := decodeRow(row)
	if err != nil {
		logger.Warn("skipping line with invalid numeric data", "line", lineNumber, "err", err)
		return
	}
	w.Add(card)
}

// decodeRow converts the six columns of a data line into a card.
func decodeRow(row []string) (*Card, error) {
	amount, err := decimal.NewFromString(row[4])
	if err != nil {
		return nil, fmt.Errorf("moneyAmount %q: %w", row[4], err)
	}
	if !inRange(amount) {
		return nil, fmt.Errorf("moneyAmount %q is out of range", row[4])
	}
	views, err := strconv.Atoi(row[5])
	if err != nil {
		return nil, fmt.Errorf("viewCount %q: %w", row[5], err)
	}
	return newCardWithState(row[0], row[1], row[2], row[3], Money{value: amount}, views), nil
}

// EncodeWallet writes the header then one line per card, in store order.
// Amounts have exactly two fraction digits so encoding the same wallet
// twice produces the same bytes.
func EncodeWallet(w io.Writer, wallet *Wallet) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for c := range wallet.Cards() {
		_, err := fmt.Fprintf(bw, "%s,%s,%s,%s,%s,%d\n", c.name, c.number, c.owner, c.expiration, c.balance, c.views)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
