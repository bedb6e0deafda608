package elab

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/surface"
)

// inferArrayApp elaborates "Array n elem" against its fixed core type
// Int → Format → Format (§4.3): n checks against Int, elem checks against
// the Format universe, and the application itself is Format-classified.
func inferArrayApp(c Ctx, n *surface.ArrayApp) (core.Term, core.Term, error) {
	sp := n.Span()
	length, err := Check(c, n.Len, hostIntType(n.Len.Span()))
	if err != nil {
		return nil, nil, err
	}
	elem, err := Check(c, n.Elem, universeTerm(core.UFormat, n.Elem.Span()))
	if err != nil {
		return nil, nil, err
	}
	return &core.ArrayType{Node: node(sp), Len: length, Elem: elem}, universeTerm(core.UFormat, sp), nil
}

var externNames = map[surface.CmpOp]string{
	surface.CmpLt: "cmp_lt", surface.CmpLe: "cmp_le",
	surface.CmpGt: "cmp_gt", surface.CmpGe: "cmp_ge",
	surface.CmpEq: "cmp_eq", surface.CmpNe: "cmp_ne",
}

// inferCmp elaborates a where-clause comparison to a neutral extern
// application (§3's extern neutral head) rather than to any reducible
// core operator — the language defines no arithmetic of its own, only
// this one primitive hook used to state refine predicates. The left
// operand's inferred type drives checking of the right operand, which
// lets a refine base like U8 (Format-classified but conceptually ranging
// over the bytes it parses) compare directly against an integer literal.
func inferCmp(c Ctx, n *surface.Cmp) (core.Term, core.Term, error) {
	sp := n.Span()
	left, leftTy, err := Infer(c, n.Left)
	if err != nil {
		return nil, nil, err
	}
	right, err := Check(c, n.Right, leftTy)
	if err != nil {
		return nil, nil, err
	}
	spine := []core.Elim{core.AppElim{Args: []core.Term{left, right}}}
	return &core.Neutral{Node: node(sp), Head: core.ExternHead{Name: externNames[n.Op]}, Spine: spine},
		hostBoolType(sp), nil
}

// inferRefine elaborates "{ x : base | pred }" (testable property #10):
// base is inferred and must be Kind-acceptable (Type- or Format-
// classified), pred checks against Bool under the extended environment,
// and the refine itself carries base's own universe — refining narrows
// within a universe, it does not cross one.
func inferRefine(c Ctx, n *surface.Refine) (core.Term, core.Term, error) {
	sp := n.Span()
	base, baseTy, err := Infer(c, n.Base)
	if err != nil {
		return nil, nil, err
	}
	ok, err := checkAssignable(c, baseTy, universeTerm(core.UKind, sp))
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		c.report(diag.KNDExpectedType, "refine base must be a Type- or Format-classified term", n.Base.Span())
		return errorTerm(baseTy, sp), nil, nil
	}

	inner, b := c.extendLocal(n.BinderName, base)
	pred, err := Check(inner, n.Pred, hostBoolType(n.Pred.Span()))
	if err != nil {
		return nil, nil, err
	}

	return &core.Refine{Node: node(sp), Base: base, Pred: core.CorePredicate{Binder: b, Body: pred}}, baseTy, nil
}

// ElaborateStruct elaborates a struct item's field list into a dependent
// record-type chain (§4.3): each field's type checks against Kind under
// the binder environment extended with every preceding field, and
// duplicate labels are rejected without aborting elaboration of the
// remaining fields.
func ElaborateStruct(c Ctx, item *surface.StructItem) (core.RecordType, error) {
	seen := map[string]bool{}
	return elaborateFields(c, item.Fields, seen)
}

func elaborateFields(c Ctx, fields []surface.StructField, seen map[string]bool) (core.RecordType, error) {
	if len(fields) == 0 {
		return &core.EmptyRecordType{}, nil
	}
	f := fields[0]
	sp := f.NodeSpan

	if seen[f.Label] {
		c.report(diag.TYPDuplicateField, "duplicate field label "+f.Label, sp)
	}
	seen[f.Label] = true

	typ, err := Check(c, f.Type, universeTerm(core.UKind, f.Type.Span()))
	if err != nil {
		return nil, err
	}

	inner, b := c.extendLocal(f.Label, typ)
	rest, err := elaborateFields(inner, fields[1:], seen)
	if err != nil {
		return nil, err
	}

	return &core.RecordTypeCons{Node: node(sp), Label: f.Label, Binder: b, FieldType: typ, Rest: rest}, nil
}
