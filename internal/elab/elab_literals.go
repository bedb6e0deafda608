package elab

import (
	"math"
	"math/big"

	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/srcspan"
	"github.com/ddlc/ddlc/internal/surface"
)

func hostIntType(sp srcspan.Span) *core.HostPrim {
	return &core.HostPrim{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.HostInt}
}

func hostF32Type(sp srcspan.Span) *core.HostPrim {
	return &core.HostPrim{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.HostF32}
}

func hostF64Type(sp srcspan.Span) *core.HostPrim {
	return &core.HostPrim{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.HostF64}
}

func hostBoolType(sp srcspan.Span) *core.HostPrim {
	return &core.HostPrim{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.HostBool}
}

// inferIntLit produces the default Int-typed literal (§4.3 "integer
// literals infer as Int"); arbitrary precision, so no range check applies
// at inference time.
func inferIntLit(n *surface.IntLit) core.Term {
	sp := n.Span()
	return &core.Lit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.IntLit, Value: n.Value}
}

// inferFloatLit produces the default F64-typed literal (§4.3 "float
// literals infer as F64").
func inferFloatLit(n *surface.FloatLit) core.Term {
	sp := n.Span()
	return &core.Lit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.F64Lit, Value: n.Value}
}

// asSpecialCheck implements the literal-retyping rules that Check applies
// before falling back to infer-then-compare: an integer literal checked
// against Int always succeeds (arbitrary precision, nothing to range-
// check); a float literal checked against F32 is retyped and range/
// precision-checked, emitting LiteralOutOfRange on overflow; a float
// literal checked against F64 always succeeds (its default type already).
func asSpecialCheck(c Ctx, e surface.Term, expected core.Term) (core.Term, bool, error) {
	switch lit := e.(type) {
	case *surface.If:
		term, err := checkIf(c, lit, expected)
		if err != nil {
			return nil, false, err
		}
		return term, true, nil
	case *surface.IntLit:
		if isHostPrim(expected, core.HostInt) {
			return inferIntLit(lit), true, nil
		}
		if fp, ok := expected.(*core.FormatPrim); ok && fp.Kind != core.FormatFloat {
			term, ok := checkIntAsFormatPrim(c, lit, fp)
			return term, ok, nil
		}
	case *surface.FloatLit:
		if isHostPrim(expected, core.HostF64) {
			return inferFloatLit(lit), true, nil
		}
		if isHostPrim(expected, core.HostF32) {
			term, ok := checkFloatAsF32(c, lit)
			return term, ok, nil
		}
	}
	return nil, false, nil
}

func isHostPrim(t core.Term, kind core.HostPrimKind) bool {
	hp, ok := t.(*core.HostPrim)
	return ok && hp.Kind == kind
}

func checkFloatAsF32(c Ctx, lit *surface.FloatLit) (core.Term, bool) {
	sp := lit.Span()
	f32 := float32(lit.Value)
	if math.IsInf(float64(f32), 0) && !math.IsInf(lit.Value, 0) {
		c.report(diag.TYPLiteralOutOfRange, "float literal out of range for F32", sp)
		return errorTerm(hostF32Type(sp), sp), true
	}
	return &core.Lit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.F32Lit, Value: f32}, true
}

// checkIntAsFormatPrim range-checks an integer literal against a fixed-
// width format primitive. A refine base like U8 classifies the bytes U8
// parses, not a host numeric type, but a where-clause predicate still
// needs to compare its bound variable against literals of that width
// (testable property #10's "x < 10" under "x : U8") — this is the one
// place width-bounded LiteralOutOfRange actually fires.
func checkIntAsFormatPrim(c Ctx, lit *surface.IntLit, fp *core.FormatPrim) (core.Term, bool) {
	sp := lit.Span()
	if !fitsFormatPrim(lit.Value, fp) {
		c.report(diag.TYPLiteralOutOfRange, "integer literal out of range for "+fp.String(), sp)
		return errorTerm(fp, sp), true
	}
	return &core.Lit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Kind: core.IntLit, Value: lit.Value}, true
}

func fitsFormatPrim(v *big.Int, fp *core.FormatPrim) bool {
	width := int(fp.Width)
	if fp.Kind == core.FormatUnsigned {
		if v.Sign() < 0 {
			return false
		}
		max := new(big.Int).Lsh(big.NewInt(1), uint(width))
		return v.Cmp(max) < 0
	}
	half := new(big.Int).Lsh(big.NewInt(1), uint(width-1))
	min := new(big.Int).Neg(half)
	max := new(big.Int).Sub(half, big.NewInt(1))
	return v.Cmp(min) >= 0 && v.Cmp(max) <= 0
}
