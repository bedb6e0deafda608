package core

import (
	"fmt"

	"github.com/ddlc/ddlc/internal/binder"
)

// ArrayType is "Array n elem": a format describing n contiguous copies of
// elem. Len is checked against Int; at format-interpretation time it must
// evaluate to a non-negative literal (see internal/format).
type ArrayType struct {
	Node
	Len  Term
	Elem Term
}

func (a *ArrayType) termNode() {}
func (a *ArrayType) String() string { return fmt.Sprintf("Array %s %s", a.Len, a.Elem) }

// ArrayVal is an array value: the ordered sequence of element values
// produced by parsing an ArrayType, or constructed directly during
// normalization/testing.
type ArrayVal struct {
	Node
	Elements []Term
}

func (a *ArrayVal) termNode() {}
func (a *ArrayVal) String() string { return fmt.Sprintf("%v", a.Elements) }

// Refine is a where-constrained type "{ x : base | pred }". The
// elaborator builds these (testable property #10); the format
// interpreter has no dispatch case for Refine and always rejects it with
// InvalidFormat (see internal/format and SPEC_FULL.md's Open Question
// resolution).
type Refine struct {
	Node
	Base Term
	Pred CorePredicate
}

// CorePredicate is a predicate bound over the refined value.
type CorePredicate struct {
	Binder binder.Binder
	Body   Term
}

func (r *Refine) termNode() {}
func (r *Refine) String() string {
	return fmt.Sprintf("{ %s : %s | %s }", r.Pred.Binder, r.Base, r.Pred.Body)
}
