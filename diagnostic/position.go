// Package diagnostic carries source positions and the error-aggregation and
// suggestion machinery shared by every pipeline stage, in the style of
// github.com/openllb/hlb/diagnostic.
package diagnostic

import "fmt"

// Position records where a token or node begins in the source, 1-indexed for
// both line and column to match conventional editor/error-message addressing.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// String renders the position the way compilers traditionally do:
// "file:line:col:". An unnamed position (used for prelude-synthesized nodes)
// renders as the empty string.
func (p Position) String() string {
	if p.Filename == "" && p.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d:", p.Filename, p.Line, p.Column)
}
