// Package checker implements the kinding, typing, and effect-discharge
// rules, grounded on github.com/openllb/hlb/checker's multi-table scope
// idiom (global decl tables plus nested lexical scopes), simplified from
// HLB's reflection-based tree walk to explicit switches per node kind.
package checker

import "github.com/efflang/efflang/ast"

// scope is a local lexical scope: big_vars (kind-parameter bindings) and vars
// (value bindings), chained to an optional parent. Scopes are pushed around
// each definition head, function body, match arm, and let-statement tail, and
// popped by simply discarding the child and resuming the parent.
type scope struct {
	parent *scope
	big    map[string]ast.Kind
	vars   map[string]ast.Kinded
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, big: map[string]ast.Kind{}, vars: map[string]ast.Kinded{}}
}

func (s *scope) lookupBig(name string) (ast.Kind, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if k, ok := sc.big[name]; ok {
			return k, true
		}
	}
	return ast.Kind{}, false
}

func (s *scope) lookupVar(name string) (ast.Kinded, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.vars[name]; ok {
			return t, true
		}
	}
	return ast.Kinded{}, false
}

func (s *scope) insertBig(name string, k ast.Kind) {
	s.big[name] = k
}

func (s *scope) insertVar(name string, t ast.Kinded) {
	s.vars[name] = t
}

// allVarNames collects every bound value-identifier visible from this scope,
// used to build "did you mean" suggestions for UndefinedIdentifier.
func (s *scope) allVarNames() []string {
	var names []string
	seen := map[string]bool{}
	for sc := s; sc != nil; sc = sc.parent {
		for name := range sc.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
