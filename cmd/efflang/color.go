package main

import (
	"fmt"
	"strings"

	"github.com/efflang/efflang/diagnostic"
	"github.com/logrusorgru/aurora"
)

func newColor(enabled bool) aurora.Aurora {
	return diagnostic.NewColor(enabled)
}

// displayError renders a pipeline error for the terminal, expanding a
// diagnostic.Error aggregate into one colored line per diagnostic rather than
// the newline-joined form Error() returns.
func displayError(color aurora.Aurora, err error) string {
	if agg, ok := err.(*diagnostic.Error); ok {
		lines := make([]string, len(agg.Diagnostics))
		for i, d := range agg.Diagnostics {
			lines[i] = color.Red(d.Error()).String()
		}
		return strings.Join(lines, "\n")
	}
	return color.Red(fmt.Sprint(err)).String()
}
