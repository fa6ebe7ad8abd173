package interp

import (
	"strconv"
	"strings"

	"github.com/efflang/efflang/checker"
)

// Sprint renders a Value the way the CLI surface does. Struct fields print
// in the struct's declared order, not construction order.
func Sprint(prog *checker.Program, v Value) string {
	switch v.Tag {
	case VString:
		return "\"" + v.Str + "\""

	case VNumber:
		return strconv.FormatUint(v.Num, 10)

	case VTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = Sprint(prog, e)
		}
		return "(" + strings.Join(parts, ", ") + ")"

	case VStruct:
		info := prog.Structs[v.StructName]
		parts := make([]string, len(info.Fields))
		for i, f := range info.Fields {
			parts[i] = f.Name.Name + ": " + Sprint(prog, v.Fields[f.Name.Name])
		}
		return v.StructName + " { " + strings.Join(parts, ", ") + " }"

	case VCtor:
		return v.CtorName + "(" + Sprint(prog, *v.Inner) + ")"
	}
	panic("interp: unreachable value tag")
}
