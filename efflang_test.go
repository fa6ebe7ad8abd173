package efflang

import (
	"testing"

	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/interp"
	"github.com/stretchr/testify/require"
)

// Each test here corresponds to one of the worked end-to-end scenarios, run
// through the complete pipeline exactly as the CLI's `run` command does.

func TestScenarioHelloWorld(t *testing.T) {
	_, v, err := Interpret("t", []byte(`
		struct Unit {}
		enum Void {}
		fn main(): Str { "hello" }
	`))
	require.NoError(t, err)
	require.Equal(t, interp.StringValue("hello"), v)
}

func TestScenarioMethodCallChain(t *testing.T) {
	_, v, err := Interpret("t", []byte(`
		fn main(): Nat { 2.add(3).mul(4) }
	`))
	require.NoError(t, err)
	require.Equal(t, interp.NumberValue(20), v)
}

func TestScenarioGenericIdentity(t *testing.T) {
	_, v, err := Interpret("t", []byte(`
		fn id[T: Type](x: T): T { x }
		fn main(): Nat { id[Nat](7) }
	`))
	require.NoError(t, err)
	require.Equal(t, interp.NumberValue(7), v)
}

func TestScenarioEnumMatch(t *testing.T) {
	_, v, err := Interpret("t", []byte(`
		enum Opt[T: Type] { some(T), none(()) }
		fn main(): Nat { match some[Nat](3) { some(n) { n } none(_) { 0 } } }
	`))
	require.NoError(t, err)
	require.Equal(t, interp.NumberValue(3), v)
}

func TestScenarioRequiresFailed(t *testing.T) {
	_, _, err := Interpret("t", []byte(`
		fn f(x: Nat): Nat requires x.eq(0) { x }
		fn main(): Nat { f(1) }
	`))
	require.Error(t, err)
	var reqFailed *errdefs.ErrRequiresFailed
	require.ErrorAs(t, err, &reqFailed)
	require.Equal(t, "f", reqFailed.Name)
}

func TestScenarioInvalidEffectUse(t *testing.T) {
	_, _, err := Interpret("t", []byte(`
		fn greet(): Str affects {Stdout} { "hi" }
		fn main(): Str { greet() }
	`))
	require.Error(t, err)
	var invalidEff *errdefs.ErrInvalidEffectUse
	require.ErrorAs(t, err, &invalidEff)
	require.Equal(t, "main", invalidEff.Fn)
	require.Equal(t, "Stdout", invalidEff.Effect)
}

func TestScenarioNonExhaustiveMatch(t *testing.T) {
	_, _, err := Interpret("t", []byte(`
		enum E { a(()), b(()) }
		fn main(): Nat { match a(()) { b(_) { 0 } } }
	`))
	require.Error(t, err)
	var nonExhaustive *errdefs.ErrNonExhaustiveMatch
	require.ErrorAs(t, err, &nonExhaustive)
}

func TestSprintWrapsValuePrinting(t *testing.T) {
	prog, v, err := Interpret("t", []byte(`fn main(): Str { "hello" }`))
	require.NoError(t, err)
	require.Equal(t, `"hello"`, Sprint(prog, v))
}
