package elab

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/surface"
)

// inferIf implements "infer infers c against Bool, infers t : τ, then
// checks f against τ" (§4.3).
func inferIf(c Ctx, n *surface.If) (core.Term, core.Term, error) {
	sp := n.Span()
	cond, err := Check(c, n.Cond, hostBoolType(n.Cond.Span()))
	if err != nil {
		return nil, nil, err
	}
	then, typ, err := Infer(c, n.Then)
	if err != nil {
		return nil, nil, err
	}
	els, err := Check(c, n.Else, typ)
	if err != nil {
		return nil, nil, err
	}
	return &core.If{Node: node(sp), Cond: cond, Then: then, Else: els}, typ, nil
}

// checkIf implements "check(if c t f, τ) elaborates c against Bool, then
// each branch against τ" — distinct from (and more permissive than) the
// infer-then-compare fallback Check otherwise uses, since it lets the two
// branches be checked independently against τ instead of requiring their
// inferred types to match each other first.
func checkIf(c Ctx, n *surface.If, expected core.Term) (core.Term, error) {
	sp := n.Span()
	cond, err := Check(c, n.Cond, hostBoolType(n.Cond.Span()))
	if err != nil {
		return nil, err
	}
	then, err := Check(c, n.Then, expected)
	if err != nil {
		return nil, err
	}
	els, err := Check(c, n.Else, expected)
	if err != nil {
		return nil, err
	}
	return &core.If{Node: node(sp), Cond: cond, Then: then, Else: els}, nil
}
