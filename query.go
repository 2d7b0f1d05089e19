package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the wallet.
//
// The wallet is seen as an array of card objects keyed like the file header,
// e.g. "$[?(@.moneyAmount > 10)].cardNumber". Querying does not count as a
// view.
func Query(w *Wallet, expr string) (any, error) {
	raw, err := json.Marshal(w.cards)
	if err != nil {
		return nil, fmt.Errorf("could not encode wallet: %w", err)
	}
	// jsonpath works on generic values only.
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not decode wallet: %w", err)
	}
	val, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return val, nil
}
