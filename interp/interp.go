package interp

import (
	"github.com/efflang/efflang/ast"
	"github.com/efflang/efflang/checker"
	"github.com/efflang/efflang/diagnostic"
	"github.com/efflang/efflang/errdefs"
	"github.com/efflang/efflang/prelude"
)

// interp holds the immutable program-wide definition table for one run.
type interp struct {
	prog *checker.Program
}

// Run evaluates main() in an empty lexical environment under a checked
// program.
func Run(prog *checker.Program) (Value, error) {
	it := &interp{prog: prog}
	return it.callFunction("main", nil, diagnostic.Position{})
}

func (it *interp) eval(e ast.Expr, en *env) (Value, error) {
	switch e.Tag {
	case ast.EString:
		return StringValue(e.StringVal), nil

	case ast.ENumber:
		return NumberValue(e.NumberVal), nil

	case ast.ETuple:
		elems := make([]Value, len(e.Elems))
		for i, el := range e.Elems {
			v, err := it.eval(el, en)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return TupleValue(elems...), nil

	case ast.EStructLit:
		fields := make(map[string]Value, len(e.Fields))
		for _, f := range e.Fields {
			v, err := it.eval(f.Value, en)
			if err != nil {
				return Value{}, err
			}
			fields[f.Name.Name] = v
		}
		return StructValue(e.Name, fields), nil

	case ast.EIdent:
		v, _ := en.lookup(e.Name)
		return v, nil

	case ast.ECall:
		args := make([]Value, len(e.Args))
		for i, a := range e.Args {
			v, err := it.eval(a, en)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return it.callFunction(e.Name, args, e.Pos)

	case ast.EFieldGet:
		recv, err := it.eval(*e.Receiver, en)
		if err != nil {
			return Value{}, err
		}
		return recv.Fields[e.Field.Name], nil

	case ast.EMatch:
		return it.evalMatch(e, en)

	case ast.EBlock:
		return it.evalBlock(*e.Block, en)
	}
	panic("interp: unreachable expression tag")
}

// callFunction dispatches a call by name: a primitive (intercepted rather
// than running its placeholder body), a user function, or — the only case
// left once both of those fail, which the checker has already verified — an
// enum constructor packaging its one argument.
func (it *interp) callFunction(name string, args []Value, pos diagnostic.Position) (Value, error) {
	if prelude.PrimitiveNames[name] {
		return applyPrimitive(name, args, pos)
	}
	if defn, ok := it.prog.Defns[name]; ok {
		return it.callUserFunction(defn, args)
	}
	return CtorValue(name, args[0]), nil
}

func (it *interp) callUserFunction(defn ast.TopDefn, args []Value) (Value, error) {
	fnEnv := newEnv(nil)
	for i, p := range defn.ValueParams {
		fnEnv.insert(p.Name.Name, args[i])
	}

	if defn.Requires != nil {
		v, err := it.eval(*defn.Requires, fnEnv)
		if err != nil {
			return Value{}, err
		}
		if !v.IsTrue() {
			return Value{}, &errdefs.ErrRequiresFailed{Name: defn.Name.Name}
		}
	}

	result, err := it.evalBlock(*defn.Body, fnEnv)
	if err != nil {
		return Value{}, err
	}

	if defn.Ensures != nil {
		ensEnv := newEnv(fnEnv)
		ensEnv.insert("ret", result)
		v, err := it.eval(*defn.Ensures, ensEnv)
		if err != nil {
			return Value{}, err
		}
		if !v.IsTrue() {
			return Value{}, &errdefs.ErrEnsuresFailed{Name: defn.Name.Name}
		}
	}

	return result, nil
}

func (it *interp) evalMatch(e ast.Expr, en *env) (Value, error) {
	scrut, err := it.eval(*e.Scrutinee, en)
	if err != nil {
		return Value{}, err
	}
	for _, arm := range e.Arms {
		bindings, ok := matchPat(arm.Pat, scrut)
		if !ok {
			continue
		}
		armEnv := newEnv(en)
		for name, v := range bindings {
			armEnv.insert(name, v)
		}
		return it.evalBlock(arm.Body, armEnv)
	}
	return Value{}, &errdefs.ErrNonExhaustiveMatch{Pos: e.Pos}
}

func (it *interp) evalBlock(b ast.Block, parent *env) (Value, error) {
	blockEnv := newEnv(parent)
	for _, stmt := range b.Stmts {
		v, err := it.eval(stmt.Value, blockEnv)
		if err != nil {
			return Value{}, err
		}
		bindings, ok := matchPat(stmt.Pat, v)
		if !ok {
			panic("interp: checked program's let-pattern failed to match its value")
		}
		for name, bv := range bindings {
			blockEnv.insert(name, bv)
		}
	}
	return it.eval(*b.Tail, blockEnv)
}
