package corenv

import (
	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/value"
)

// ValEnv threads bound values through evaluation. It implements
// value.Env so a value.Closure can carry one without internal/value
// importing corenv (see value/closure.go).
type ValEnv struct {
	parent *ValEnv
	binder binder.Binder
	val    value.Value
}

// NewValEnv returns the empty value environment.
func NewValEnv() *ValEnv {
	return nil
}

// Extend returns a new ValEnv binding b to v in front of e.
func (e *ValEnv) Extend(b binder.Binder, v value.Value) *ValEnv {
	return &ValEnv{parent: e, binder: b, val: v}
}

// Lookup implements value.Env.
func (e *ValEnv) Lookup(b binder.Binder) (value.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.binder.Equal(b) {
			return cur.val, true
		}
	}
	return nil, false
}
