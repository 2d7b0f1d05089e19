package renderer

import (
	"fmt"
	"io"
	"strings"
)

// History renders the raw transaction log lines.
func History(lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction History\n\n")
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "```")
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
		fmt.Fprintln(w, "```")
		return len(lines) > 0
	})
	if len(lines) == 0 {
		fmt.Fprintln(&b, "(No transactions recorded)")
	}
	return b.String()
}
