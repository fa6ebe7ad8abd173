package lexer

import (
	"testing"

	"github.com/efflang/efflang/token"
	"github.com/stretchr/testify/require"
)

func TestLexKinds(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`fn f[T: Type](x: T): T { x } // trailing comment`))
	require.NoError(t, err)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []token.Kind{
		token.Fn, token.SmallIdent, token.LBracket, token.BigIdent, token.Colon, token.BigIdent, token.RBracket,
		token.LParen, token.SmallIdent, token.Colon, token.BigIdent, token.RParen,
		token.Colon, token.BigIdent,
		token.LBrace, token.SmallIdent, token.RBrace,
		token.EOF,
	}, kinds)
}

func TestLexLongestMatchPunctuation(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`:: -> :`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.ColonColon, token.Arrow, token.Colon, token.EOF}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind, toks[3].Kind,
	})
}

func TestLexReservedWordBoundary(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`fn fnord`))
	require.NoError(t, err)
	require.Equal(t, token.Fn, toks[0].Kind)
	require.Equal(t, token.SmallIdent, toks[1].Kind)
	require.Equal(t, "fnord", toks[1].Literal)
}

// An uppercase letter ends a reserved word's identifier run just as a
// lowercase/digit/underscore continuation would prevent the match, since the
// keyword boundary is judged by the small-identifier-tail rule, not a
// shared identifier-tail rule.
func TestLexReservedWordBoundaryBeforeBigIdent(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`matchFoo`))
	require.NoError(t, err)
	require.Equal(t, token.Match, toks[0].Kind)
	require.Equal(t, token.BigIdent, toks[1].Kind)
	require.Equal(t, "Foo", toks[1].Literal)
	require.Equal(t, token.EOF, toks[2].Kind)
}

func TestLexSmallIdentStopsBeforeUppercase(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`fooBar`))
	require.NoError(t, err)
	require.Equal(t, token.SmallIdent, toks[0].Kind)
	require.Equal(t, "foo", toks[0].Literal)
	require.Equal(t, token.BigIdent, toks[1].Kind)
	require.Equal(t, "Bar", toks[1].Literal)
}

func TestLexBigIdentStopsBeforeUnderscore(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`Foo_bar`))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.BigIdent, token.Underscore, token.SmallIdent, token.EOF}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind, toks[3].Kind,
	})
	require.Equal(t, "Foo", toks[0].Literal)
	require.Equal(t, "bar", toks[2].Literal)
}

func TestLexNumberWithSeparators(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`1_000_000`))
	require.NoError(t, err)
	require.Equal(t, token.Number, toks[0].Kind)
	require.Equal(t, "1_000_000", toks[0].Literal)
}

func TestLexNumberOverflow(t *testing.T) {
	_, err := Lex("test.eff", []byte(`99999999999999999999999999`))
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, InvalidNumber, lexErr.Kind)
	require.Error(t, lexErr.Unwrap())
}

func TestLexUnclosedString(t *testing.T) {
	_, err := Lex("test.eff", []byte(`"unterminated`))
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, UnclosedString, lexErr.Kind)
}

func TestLexInvalidByte(t *testing.T) {
	_, err := Lex("test.eff", []byte("$"))
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, InvalidByte, lexErr.Kind)
}

func TestLexCommentsAndWhitespace(t *testing.T) {
	toks, err := Lex("test.eff", []byte("// a comment\n\tfn  // another\n f"))
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.Fn, token.SmallIdent, token.EOF}, []token.Kind{
		toks[0].Kind, toks[1].Kind, toks[2].Kind,
	})
}

func TestLexStringLiteral(t *testing.T) {
	toks, err := Lex("test.eff", []byte(`"hello world"`))
	require.NoError(t, err)
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Literal)
}
