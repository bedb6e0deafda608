// Package elab implements the bidirectional elaborator (§4.3): check(e, τ)
// and infer(e) turn surface.Term into core.Term while resolving names,
// defaulting numeric literals, and checking universe/kind well-formedness.
// Elaboration never aborts on a bad subterm — each rule either succeeds or
// appends exactly one diagnostic to the Sink and returns an
// *core.ErrorTerm so elaboration of sibling subterms continues. A non-nil
// error returned from Check/Infer indicates an internal invariant
// violation (an evaluator EVLUnexpectedBoundVar, say), never ordinary
// user-facing elaboration failure — that distinction mirrors the
// "evaluation: unexpected-bound-var is fatal to the current call" line in
// the propagation policy the rest of this package follows.
package elab

import (
	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/eval"
	"github.com/ddlc/ddlc/internal/srcspan"
	"github.com/ddlc/ddlc/internal/surface"
	"github.com/ddlc/ddlc/internal/value"
)

// Ctx bundles everything a single Check/Infer call needs: the module
// globals elaborated so far, the local name→(binder,type) environment
// introduced by enclosing record fields or refine binders, the matching
// value environment (so types depending on earlier fields can be
// evaluated with those fields standing for themselves as free neutrals),
// and the diagnostic sink.
type Ctx struct {
	Globals     *corenv.GlobalEnv
	GlobalCache *corenv.GlobalValues
	Locals      *corenv.LocalEnv
	ValLocals   *corenv.ValEnv
	Sink        *diag.Sink
}

// NewCtx builds the top-level elaboration context for a fresh module.
func NewCtx(sink *diag.Sink) Ctx {
	return Ctx{
		Globals:     corenv.NewGlobalEnv(),
		GlobalCache: corenv.NewGlobalValues(),
		Locals:      corenv.NewLocalEnv(),
		ValLocals:   corenv.NewValEnv(),
		Sink:        sink,
	}
}

func (c Ctx) evalCtx() eval.Ctx {
	return eval.Ctx{Globals: c.Globals, GlobalCache: c.GlobalCache, Locals: c.ValLocals}
}

// extendLocal binds name to a fresh binder of type typ, for both name
// resolution (Locals) and evaluation (ValLocals, where the binder stands
// for itself as a free neutral — the same trick Quote/Equal use to reason
// under an unopened scope).
func (c Ctx) extendLocal(name string, typ core.Term) (Ctx, binder.Binder) {
	b := binder.Fresh(name)
	c.Locals = c.Locals.Extend(name, b, typ)
	c.ValLocals = c.ValLocals.Extend(b, &value.Neutral{Head: value.FreeHead{Binder: b}})
	return c, b
}

func universeTerm(lvl core.Universe, sp srcspan.Span) *core.UniverseLit {
	return &core.UniverseLit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Level: lvl}
}

func errorTerm(expected core.Term, sp srcspan.Span) *core.ErrorTerm {
	return &core.ErrorTerm{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Expected: expected}
}

func (c Ctx) report(code, message string, sp srcspan.Span) {
	c.Sink.Add(diag.New(code, "elab", message, &sp))
}

// evalType reduces a core type term to a value for definitional-equality
// comparisons and kind subsumption checks.
func (c Ctx) evalType(t core.Term) (value.Value, error) {
	return eval.Eval(c.evalCtx(), t)
}

// Infer elaborates e without an expected type, returning the core term and
// its inferred core type.
func Infer(c Ctx, e surface.Term) (core.Term, core.Term, error) {
	switch n := e.(type) {
	case *surface.Name:
		return inferName(c, n)
	case *surface.IntLit:
		return inferIntLit(n), hostIntType(n.Span()), nil
	case *surface.FloatLit:
		return inferFloatLit(n), hostF64Type(n.Span()), nil
	case *surface.Ann:
		return inferAnn(c, n)
	case *surface.If:
		return inferIf(c, n)
	case *surface.ArrayApp:
		return inferArrayApp(c, n)
	case *surface.Cmp:
		return inferCmp(c, n)
	case *surface.Refine:
		return inferRefine(c, n)
	default:
		sp := e.Span()
		c.report(diag.SYNUnexpectedToken, "elaborator: unrecognized surface term", sp)
		return errorTerm(nil, sp), nil, nil
	}
}

// Check elaborates e against expected, which may be UniverseLit{UKind} —
// in which case §4.3's Kind-subsumption rule applies (any Type- or
// Format-classified term satisfies a Kind expectation) — or any other
// core type, checked by ordinary definitional equality after inferring e.
func Check(c Ctx, e surface.Term, expected core.Term) (core.Term, error) {
	if lit, ok, err := asSpecialCheck(c, e, expected); ok || err != nil {
		return lit, err
	}

	core_, inferred, err := Infer(c, e)
	if err != nil {
		return nil, err
	}
	if _, isErr := core_.(*core.ErrorTerm); isErr {
		return core_, nil
	}

	ok, err := checkAssignable(c, inferred, expected)
	if err != nil {
		return nil, err
	}
	if !ok {
		sp := e.Span()
		c.report(diag.TYPMismatch, mismatchMessage(inferred, expected), sp)
		return errorTerm(expected, sp), nil
	}
	return core_, nil
}

// checkAssignable decides whether a term whose inferred type is `got` may
// be used where `expected` is required: ordinary definitional equality,
// the Kind-subsumption rule (Type and Format both "are in Kind"), and one
// further coercion — an integer-kinded format primitive (U8, S16Be, ...)
// satisfies an Int expectation. A refine base like "x : U8" classifies
// the bytes U8 parses, not a host numeric type, so without this a bound
// variable declared against a format primitive could never be used where
// Int is expected (e.g. as an Array length or a where-clause operand).
func checkAssignable(c Ctx, got, expected core.Term) (bool, error) {
	if u, ok := expected.(*core.UniverseLit); ok && u.Level == core.UKind {
		gv, err := c.evalType(got)
		if err != nil {
			return false, err
		}
		gu, ok := gv.(value.Universe)
		return ok && (gu.Level == core.UType || gu.Level == core.UFormat || gu.Level == core.UKind), nil
	}

	if isHostPrim(expected, core.HostInt) {
		gv, err := c.evalType(got)
		if err != nil {
			return false, err
		}
		if fc, ok := gv.(value.FormatConst); ok && fc.Kind != core.FormatFloat {
			return true, nil
		}
	}

	gotV, err := c.evalType(got)
	if err != nil {
		return false, err
	}
	expV, err := c.evalType(expected)
	if err != nil {
		return false, err
	}
	return eval.Equal(c.evalCtx(), gotV, expV)
}

func mismatchMessage(found, expected core.Term) string {
	return "type mismatch: expected " + expected.String() + ", found " + found.String()
}
