package corenv

import (
	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/core"
)

// LocalEnv is the bound-variable environment the elaborator extends one
// field/predicate-subject at a time. Lookup resolves the innermost
// binding first, matching ordinary lexical shadowing.
type LocalEnv struct {
	parent *LocalEnv
	name   string
	binder binder.Binder
	typ    core.Term
}

// NewLocalEnv returns the empty local environment.
func NewLocalEnv() *LocalEnv {
	return nil
}

// Extend returns a new LocalEnv with (name, b, typ) bound in front of e.
func (e *LocalEnv) Extend(name string, b binder.Binder, typ core.Term) *LocalEnv {
	return &LocalEnv{parent: e, name: name, binder: b, typ: typ}
}

// Lookup resolves name against the local environment, innermost first.
func (e *LocalEnv) Lookup(name string) (binder.Binder, core.Term, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.binder, cur.typ, true
		}
	}
	return binder.Binder{}, nil, false
}
