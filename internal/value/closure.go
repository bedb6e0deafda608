package value

import "github.com/ddlc/ddlc/internal/binder"

// Env is the minimal surface internal/corenv.ValEnv must expose for a
// Closure to defer its substitution. Defining the interface here (rather
// than importing corenv, which itself needs Value) keeps eval's
// environment and its values free of an import cycle: corenv depends on
// value, not the other way around.
type Env interface {
	Lookup(b binder.Binder) (Value, bool)
}

// Closure stores a delayed environment plus an unopened scope, the
// substitution-is-lazy-friendly representation called for in §4.1: no
// eager copy happens until something actually opens the binder.
type Closure struct {
	Binder binder.Binder
	Body   Body // opaque — concretely a core.Term, kept generic to avoid a cycle
	Env    Env
}

// Body is the unevaluated payload a Closure defers. internal/eval type
// asserts it back to core.Term when opening the closure; nothing outside
// eval needs to inspect it.
type Body interface{}

func (c Closure) valueNode() {}
func (c Closure) String() string { return "<closure " + c.Binder.Label + ">" }
