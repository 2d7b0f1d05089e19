package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wallet"
)

// cell escapes the characters that would break a markdown table cell.
func cell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// Cards renders the cards as a markdown table, in the given order.
// Balances are formatted in currency if set.
func Cards(cards []*wallet.Card, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cards\n\n")
	if len(cards) == 0 {
		fmt.Fprintln(&b, "(No cards in wallet)")
		return b.String()
	}
	fmt.Fprintln(&b, "| Card Name | Number | Owner | Expires | Balance | Views |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|")
	for _, c := range cards {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d |\n",
			cell(c.Name()),
			cell(c.Number()),
			cell(c.Owner()),
			cell(c.Expiration()),
			c.Balance().Format(currency),
			c.Views(),
		)
	}
	return b.String()
}

// Card renders the details of a single card.
func Card(c *wallet.Card, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Card %s\n\n", c.Number())
	fmt.Fprintf(&b, "- **Card Name**: %s\n", c.Name())
	fmt.Fprintf(&b, "- **Owner**: %s\n", c.Owner())
	fmt.Fprintf(&b, "- **Expires**: %s\n", c.Expiration())
	fmt.Fprintf(&b, "- **Balance**: %s\n", c.Balance().Format(currency))
	fmt.Fprintf(&b, "- **Views**: %d\n", c.Views())
	return b.String()
}
