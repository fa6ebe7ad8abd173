package diagnostic

import "strings"

// Error aggregates several diagnostics into one error, mirroring
// github.com/openllb/hlb/diagnostic.Error. No pipeline stage builds one at
// present: the lexer, parser, checker, and interpreter each stop at and
// return their first error.
type Error struct {
	Diagnostics []error
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Diagnostics))
	for i, err := range e.Diagnostics {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the first diagnostic so errors.Is/As can look through a
// single-error aggregate without callers needing to special-case it.
func (e *Error) Unwrap() error {
	if len(e.Diagnostics) == 0 {
		return nil
	}
	return e.Diagnostics[0]
}

// WithDiagnostic folds another error into a (possibly nil) aggregate,
// flattening nested aggregates so Diagnostics is always a flat list.
func WithDiagnostic(agg *Error, err error) *Error {
	if err == nil {
		return agg
	}
	if agg == nil {
		agg = &Error{}
	}
	if nested, ok := err.(*Error); ok {
		agg.Diagnostics = append(agg.Diagnostics, nested.Diagnostics...)
		return agg
	}
	agg.Diagnostics = append(agg.Diagnostics, err)
	return agg
}
