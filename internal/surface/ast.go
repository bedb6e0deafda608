// Package surface implements the surface syntax accepted by the
// elaborator (§6.1) and the external-collaborator lexer/parser that
// produces it. The core never inspects lexemes; everything downstream of
// this package talks only in terms of the Module/Item/Term types defined
// here.
package surface

import (
	"math/big"

	"github.com/ddlc/ddlc/internal/srcspan"
)

// Module is an ordered sequence of items, exactly as elaborated in
// declaration order by internal/module.
type Module struct {
	Items []Item
}

// Item is the base for Alias and Struct declarations.
type Item interface {
	ItemName() string
	Doc() string
	Span() srcspan.Span
	itemNode()
}

// AliasItem is "alias Name [: Type] = Term;".
type AliasItem struct {
	Name     string
	DocText  string
	TypeAnn  Term // nil if the alias has no annotation (infer mode)
	Body     Term
	NodeSpan srcspan.Span
}

func (a *AliasItem) ItemName() string    { return a.Name }
func (a *AliasItem) Doc() string         { return a.DocText }
func (a *AliasItem) Span() srcspan.Span  { return a.NodeSpan }
func (a *AliasItem) itemNode()           {}

// StructField is one field of a struct declaration.
type StructField struct {
	Label    string
	Type     Term
	NodeSpan srcspan.Span
}

// StructItem is "struct Name { field1 : Term, field2 : Term, ... }".
type StructItem struct {
	Name     string
	DocText  string
	Fields   []StructField
	NodeSpan srcspan.Span
}

func (s *StructItem) ItemName() string   { return s.Name }
func (s *StructItem) Doc() string        { return s.DocText }
func (s *StructItem) Span() srcspan.Span { return s.NodeSpan }
func (s *StructItem) itemNode()          {}

// Term is the base interface for every surface expression/type.
type Term interface {
	Span() srcspan.Span
	termNode()
}

type node struct {
	NodeSpan srcspan.Span
}

func (n node) Span() srcspan.Span { return n.NodeSpan }

// Name is an identifier occurrence: a local variable, a module global, or
// one of the builtin constant names (Type, Format, Kind, U8, Bool, ...).
type Name struct {
	node
	Ident string
}

func (n *Name) termNode() {}

// IntLit is an integer literal; value is arbitrary precision.
type IntLit struct {
	node
	Value *big.Int
}

func (l *IntLit) termNode() {}

// FloatLit is a floating-point literal; infers as F64 unless checked
// against F32 (§4.3 numeric literal defaulting).
type FloatLit struct {
	node
	Value float64
}

func (l *FloatLit) termNode() {}

// BoolLit is `true` or `false`. Parsed as a Name and special-cased by the
// elaborator per §4.3 ("true/false are primitive constants of type
// Bool"); kept here only as a convenience constructor, which nothing in
// this repository currently calls.
func BoolLit(v bool, sp srcspan.Span) *Name {
	if v {
		return &Name{node{sp}, "true"}
	}
	return &Name{node{sp}, "false"}
}

// Ann is "e : τ".
type Ann struct {
	node
	Expr Term
	Type Term
}

func (a *Ann) termNode() {}

// If is "if c then t else f".
type If struct {
	node
	Cond Term
	Then Term
	Else Term
}

func (i *If) termNode() {}

// ArrayApp is "Array n elem" — the one built-in parameterised format.
type ArrayApp struct {
	node
	Len  Term
	Elem Term
}

func (a *ArrayApp) termNode() {}

// CmpOp enumerates the comparison operators usable inside a where-clause
// predicate. The language has no general-purpose operators; this is the
// single primitive extern hook through which a predicate produces Bool.
type CmpOp string

const (
	CmpLt CmpOp = "<"
	CmpLe CmpOp = "<="
	CmpGt CmpOp = ">"
	CmpGe CmpOp = ">="
	CmpEq CmpOp = "=="
	CmpNe CmpOp = "!="
)

// Cmp is "left op right", elaborated to a neutral extern application
// (§3's "extern" neutral head) rather than to a reducible core operator —
// the language has no user-defined or built-in arithmetic, only this one
// comparison hook for where-clause predicates.
type Cmp struct {
	node
	Op    CmpOp
	Left  Term
	Right Term
}

func (c *Cmp) termNode() {}

// Refine is "{ binder : base | pred }", the where-constrained type from
// testable property #10.
type Refine struct {
	node
	BinderName string
	Base       Term
	Pred       Term
}

func (r *Refine) termNode() {}
