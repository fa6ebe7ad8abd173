// Package errdefs defines the structured diagnostic taxonomy, one Err* type
// per category, each implementing error. This mirrors
// github.com/openllb/hlb/errdefs and github.com/openllb/hlb/checker/errors.go:
// concrete tagged structs instead of sentinel values or string matching, so
// callers can errors.As into the specific case they care about.
package errdefs

import (
	"fmt"

	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/token"
)

func formatPos(pos diagnostic.Position) string {
	s := pos.String()
	if s == "" {
		return ""
	}
	return s + " "
}

// --- Syntactic -------------------------------------------------------------

type ErrParse struct {
	Pos      diagnostic.Position
	Expected string
	Found    string // "EOF" or a token's literal/kind
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("%sexpected %s, found %s", formatPos(e.Pos), e.Expected, e.Found)
}

func WithParse(pos diagnostic.Position, expected string, found token.Token) *ErrParse {
	foundStr := "EOF"
	if found.Kind != token.EOF {
		foundStr = found.Kind.String()
		if found.Literal != "" {
			foundStr = fmt.Sprintf("%q", found.Literal)
		}
	}
	return &ErrParse{Pos: pos, Expected: expected, Found: foundStr}
}

type ErrEmptyKindedParams struct {
	Pos diagnostic.Position
}

func (e *ErrEmptyKindedParams) Error() string {
	return fmt.Sprintf("%sempty kind-parameter list `[]`; omit the brackets for no parameters", formatPos(e.Pos))
}

type ErrEmptyKindedArgs struct {
	Pos diagnostic.Position
}

func (e *ErrEmptyKindedArgs) Error() string {
	return fmt.Sprintf("%sempty kind-argument list `[]`; omit the brackets for no arguments", formatPos(e.Pos))
}

// --- Resolution --------------------------------------------------------------

type ErrUndefinedIdentifier struct {
	Pos        diagnostic.Position
	Name       string
	Suggestion string
}

func (e *ErrUndefinedIdentifier) Error() string {
	msg := fmt.Sprintf("%sundefined identifier %s", formatPos(e.Pos), e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}
	return msg
}

func WithUndefinedIdentifier(pos diagnostic.Position, name string, candidates []string) *ErrUndefinedIdentifier {
	return &ErrUndefinedIdentifier{Pos: pos, Name: name, Suggestion: diagnostic.Suggestion(name, candidates)}
}

type ErrDuplicateIdentifier struct {
	Pos  diagnostic.Position
	Name string
}

func (e *ErrDuplicateIdentifier) Error() string {
	return fmt.Sprintf("%sduplicate identifier %s", formatPos(e.Pos), e.Name)
}

type ErrDuplicateField struct {
	Pos        diagnostic.Position
	StructName string
	Field      string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("%sduplicate field %s in %s", formatPos(e.Pos), e.Field, e.StructName)
}

type ErrNoSuchField struct {
	Pos        diagnostic.Position
	StructName string
	Field      string
}

func (e *ErrNoSuchField) Error() string {
	return fmt.Sprintf("%s%s has no field %s", formatPos(e.Pos), e.StructName, e.Field)
}

type ErrNotStruct struct {
	Pos   diagnostic.Position
	Field string
}

func (e *ErrNotStruct) Error() string {
	return fmt.Sprintf("%scannot access field %s: receiver is not a struct", formatPos(e.Pos), e.Field)
}

// --- Kinding & typing --------------------------------------------------------

type ErrMismatchedKinds struct {
	Pos      diagnostic.Position
	Expected fmt.Stringer
	Found    fmt.Stringer
}

func (e *ErrMismatchedKinds) Error() string {
	return fmt.Sprintf("%smismatched kinds: expected %s, found %s", formatPos(e.Pos), e.Expected, e.Found)
}

type ErrWrongNumArgs struct {
	Pos      diagnostic.Position
	Name     string
	Expected int
	Found    int
}

func (e *ErrWrongNumArgs) Error() string {
	return fmt.Sprintf("%s%s expects %d argument(s), found %d", formatPos(e.Pos), e.Name, e.Expected, e.Found)
}

type ErrInvalidKindedApp struct {
	Pos       diagnostic.Position
	Name      string
	FoundKind fmt.Stringer
}

func (e *ErrInvalidKindedApp) Error() string {
	return fmt.Sprintf("%scannot apply arguments to %s of kind %s", formatPos(e.Pos), e.Name, e.FoundKind)
}

type ErrMismatchedTypes struct {
	Pos      diagnostic.Position
	Expected fmt.Stringer
	Found    fmt.Stringer
}

func (e *ErrMismatchedTypes) Error() string {
	return fmt.Sprintf("%smismatched types: expected %s, found %s", formatPos(e.Pos), e.Expected, e.Found)
}

type ErrInvalidPattern struct {
	Pos  diagnostic.Position
	Type fmt.Stringer
}

func (e *ErrInvalidPattern) Error() string {
	return fmt.Sprintf("%spattern cannot match values of type %s", formatPos(e.Pos), e.Type)
}

type ErrEmptyMatch struct {
	Pos diagnostic.Position
}

func (e *ErrEmptyMatch) Error() string {
	return fmt.Sprintf("%smatch must have at least one arm", formatPos(e.Pos))
}

type ErrNoExprForBlock struct {
	Pos diagnostic.Position
}

func (e *ErrNoExprForBlock) Error() string {
	return fmt.Sprintf("%sblock has no tail expression", formatPos(e.Pos))
}

type ErrInvalidEffectUse struct {
	Pos    diagnostic.Position
	Fn     string
	Effect string
}

func (e *ErrInvalidEffectUse) Error() string {
	return fmt.Sprintf("%s%s performs effect %s that is not declared", formatPos(e.Pos), e.Fn, e.Effect)
}

// --- Program shape -----------------------------------------------------------

type ErrNoMain struct{}

func (e *ErrNoMain) Error() string { return "program has no function named main" }

type ErrInvalidMain struct {
	Pos diagnostic.Position
}

func (e *ErrInvalidMain) Error() string {
	return fmt.Sprintf("%smain must take no kind-parameters or value-parameters and have no requires/ensures", formatPos(e.Pos))
}

// --- Runtime (post-check) -----------------------------------------------------

type ErrRequiresFailed struct {
	Name string
}

func (e *ErrRequiresFailed) Error() string { return fmt.Sprintf("requires failed: %s", e.Name) }

type ErrEnsuresFailed struct {
	Name string
}

func (e *ErrEnsuresFailed) Error() string { return fmt.Sprintf("ensures failed: %s", e.Name) }

type ErrNonExhaustiveMatch struct {
	Pos diagnostic.Position
}

func (e *ErrNonExhaustiveMatch) Error() string {
	return fmt.Sprintf("%sno arm of match applies to the scrutinee", formatPos(e.Pos))
}

// ErrInternalError covers a runtime failure the checker cannot rule out
// statically and that has no dedicated category of its own — currently only
// division by zero.
type ErrInternalError struct {
	Pos diagnostic.Position
	Msg string
}

func (e *ErrInternalError) Error() string {
	return fmt.Sprintf("%sinternal error: %s", formatPos(e.Pos), e.Msg)
}
