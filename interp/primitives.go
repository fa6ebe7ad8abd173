package interp

import (
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
)

// applyPrimitive executes the semantics the prelude's placeholder bodies
// stand in for. Arithmetic is unsigned 64-bit with wrapping left to Go's
// native overflow behavior; `and`/`or` are non-short-circuiting since both
// arguments have already been evaluated by the caller.
func applyPrimitive(name string, args []Value, pos diagnostic.Position) (Value, error) {
	switch name {
	case "add":
		return NumberValue(args[0].Num + args[1].Num), nil
	case "sub":
		return NumberValue(args[0].Num - args[1].Num), nil
	case "mul":
		return NumberValue(args[0].Num * args[1].Num), nil
	case "div":
		if args[1].Num == 0 {
			return Value{}, &errdefs.ErrInternalError{Pos: pos, Msg: "division by zero"}
		}
		return NumberValue(args[0].Num / args[1].Num), nil
	case "eq":
		return BoolValue(args[0].Num == args[1].Num), nil
	case "lt":
		return BoolValue(args[0].Num < args[1].Num), nil
	case "gt":
		return BoolValue(args[0].Num > args[1].Num), nil
	case "neq":
		return BoolValue(args[0].Num != args[1].Num), nil
	case "and":
		return BoolValue(args[0].IsTrue() && args[1].IsTrue()), nil
	case "or":
		return BoolValue(args[0].IsTrue() || args[1].IsTrue()), nil
	case "not":
		return BoolValue(!args[0].IsTrue()), nil
	}
	panic("interp: unknown primitive " + name)
}
