package diagnostic

import "github.com/logrusorgru/aurora"

// NewColor builds an aurora.Aurora that either applies ANSI styling or
// passes values through untouched, mirroring hlb/diagnostic's
// context-carried color setting. This is ambient CLI plumbing with no
// bearing on the language's own semantics.
func NewColor(enabled bool) aurora.Aurora {
	return aurora.NewAurora(enabled)
}
