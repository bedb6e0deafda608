// Package core defines the well-typed core language: terms, universes,
// and the record/array/neutral constructors every later stage (evaluator,
// elaborator, format interpreter) operates on. Every term carries an
// optional source span for diagnostics; spans are semantically inert and
// ignored by Equal/normalization.
package core

import (
	"fmt"

	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/srcspan"
)

// Node is the base embedded in every Term constructor.
type Node struct {
	CoreSpan srcspan.Span // position in the elaborated core tree
	OrigSpan srcspan.Span // position in the surface tree this was elaborated from
}

func (n Node) Span() srcspan.Span         { return n.CoreSpan }
func (n Node) OriginalSpan() srcspan.Span { return n.OrigSpan }

// Term is the base interface for every core expression and type.
type Term interface {
	Span() srcspan.Span
	OriginalSpan() srcspan.Span
	String() string
	termNode()
}

// Universe is one of the three universe levels from §3.
type Universe int

const (
	UType Universe = iota
	UFormat
	UKind
)

func (u Universe) String() string {
	switch u {
	case UType:
		return "Type"
	case UFormat:
		return "Format"
	case UKind:
		return "Kind"
	default:
		return "?universe"
	}
}

// UniverseLit is a universe appearing as a term, e.g. the type annotation
// "alias A : Type = ...".
type UniverseLit struct {
	Node
	Level Universe
}

func (u *UniverseLit) termNode() {}
func (u *UniverseLit) String() string { return u.Level.String() }

// BoundVar is an occurrence of a binder introduced by an enclosing scope
// (a record field, a where-clause predicate's subject, ...).
type BoundVar struct {
	Node
	Binder binder.Binder
}

func (v *BoundVar) termNode() {}
func (v *BoundVar) String() string { return v.Binder.Label }

// GlobalRef is a reference to a module item defined earlier in the module.
type GlobalRef struct {
	Node
	Name string
}

func (g *GlobalRef) termNode() {}
func (g *GlobalRef) String() string { return g.Name }

// Ann is an annotated term "e : type". Transparent at evaluation time.
type Ann struct {
	Node
	Expr Term
	Type Term
}

func (a *Ann) termNode() {}
func (a *Ann) String() string { return fmt.Sprintf("(%s : %s)", a.Expr, a.Type) }

// ErrorTerm is the recovery sentinel produced after an elaboration error
// so sibling subterms can still be elaborated. Expected carries the type
// the erroring subterm was checked against, if known.
type ErrorTerm struct {
	Node
	Expected Term
}

func (e *ErrorTerm) termNode() {}
func (e *ErrorTerm) String() string { return "<error>" }
