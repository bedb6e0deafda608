package value

import (
	"fmt"
	"strings"
)

// ArrayVal is an evaluated array: a vector of element values.
type ArrayVal struct {
	Elements []Value
}

func (a *ArrayVal) valueNode() {}
func (a *ArrayVal) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ArrayTypeVal is "Array n elem" in WHNF: the length and element-format
// values, not yet checked for well-formedness (that happens in
// internal/format when the array is actually parsed).
type ArrayTypeVal struct {
	Len  Value
	Elem Value
}

func (a *ArrayTypeVal) valueNode() {}
func (a *ArrayTypeVal) String() string { return fmt.Sprintf("Array %s %s", a.Len, a.Elem) }

// RefineVal is a where-constrained type in WHNF: the base format/type
// value plus an unopened predicate closure. The format interpreter always
// rejects this head with InvalidFormat (see SPEC_FULL.md's Open Question
// resolution); it exists so the elaborator and evaluator can still build
// and compare refined types structurally.
type RefineVal struct {
	Base Value
	Pred Closure // Body is a core.Term, binder is the refined subject
}

func (r *RefineVal) valueNode() {}
func (r *RefineVal) String() string { return fmt.Sprintf("{ _ : %s | ... }", r.Base) }
