// Package interp is the tree-walking evaluator: it runs main() under a
// checked program, threading a lexical environment and the
// program's immutable global definition table, grounded on
// github.com/openllb/hlb/codegen's "a value knows its own shape" idiom,
// generalized from HLB's filesystem/option/build values to this language's
// closed value universe.
package interp

// ValueTag distinguishes the cases of the runtime Value sum.
type ValueTag int

const (
	VString ValueTag = iota
	VNumber
	VTuple
	VStruct
	VCtor
)

// Value is a runtime value: String, Number, Tuple, Struct, or Ctor
//.
type Value struct {
	Tag ValueTag

	Str string // VString
	Num uint64 // VNumber

	Elems []Value // VTuple

	StructName string           // VStruct
	Fields     map[string]Value // VStruct

	CtorName string // VCtor
	Inner    *Value // VCtor
}

func StringValue(s string) Value { return Value{Tag: VString, Str: s} }
func NumberValue(n uint64) Value { return Value{Tag: VNumber, Num: n} }

func TupleValue(elems ...Value) Value { return Value{Tag: VTuple, Elems: elems} }

func StructValue(name string, fields map[string]Value) Value {
	return Value{Tag: VStruct, StructName: name, Fields: fields}
}

func CtorValue(name string, inner Value) Value {
	return Value{Tag: VCtor, CtorName: name, Inner: &inner}
}

// BoolValue packages a Go bool as the prelude's Bool enum, the representation
// every primitive comparison/boolean operator returns.
func BoolValue(b bool) Value {
	if b {
		return CtorValue("true", TupleValue())
	}
	return CtorValue("false", TupleValue())
}

// IsTrue reports whether v is the Bool constructor `true`. Used to evaluate
// `requires`/`ensures` predicates and the `and`/`or`/`not` primitives.
func (v Value) IsTrue() bool { return v.Tag == VCtor && v.CtorName == "true" }
