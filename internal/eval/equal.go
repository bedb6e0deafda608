package eval

import (
	"fmt"
	"math/big"

	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/value"
)

// Equal decides definitional equality of two values by mutual WHNF plus
// structural recursion. Scopes (record-type tails, refine predicates) are
// compared by opening both sides with one shared fresh binder and
// recursing on the opened bodies — the eta-expansion step called for in
// §4.2.
func Equal(ctx Ctx, v1, v2 value.Value) (bool, error) {
	switch a := v1.(type) {
	case value.Universe:
		b, ok := v2.(value.Universe)
		return ok && a.Level == b.Level, nil

	case value.FormatConst:
		b, ok := v2.(value.FormatConst)
		return ok && a == b, nil

	case value.HostPrim:
		b, ok := v2.(value.HostPrim)
		return ok && a == b, nil

	case value.Lit:
		b, ok := v2.(value.Lit)
		if !ok || a.Kind != b.Kind {
			return false, nil
		}
		return litEqual(a.Value, b.Value), nil

	case *value.ArrayTypeVal:
		b, ok := v2.(*value.ArrayTypeVal)
		if !ok {
			return false, nil
		}
		eqLen, err := Equal(ctx, a.Len, b.Len)
		if err != nil || !eqLen {
			return false, err
		}
		return Equal(ctx, a.Elem, b.Elem)

	case *value.ArrayVal:
		b, ok := v2.(*value.ArrayVal)
		if !ok || len(a.Elements) != len(b.Elements) {
			return false, nil
		}
		for i := range a.Elements {
			eq, err := Equal(ctx, a.Elements[i], b.Elements[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil

	case *value.RecordTypeVal:
		b, ok := v2.(*value.RecordTypeVal)
		if !ok || a.Label != b.Label {
			return false, nil
		}
		eqField, err := Equal(ctx, a.FieldType, b.FieldType)
		if err != nil || !eqField {
			return false, err
		}
		fresh := binder.Fresh(a.Label)
		freeVal := &value.Neutral{Head: value.FreeHead{Binder: fresh}}
		openedA, err := OpenClosure(ctx, a.Rest, freeVal)
		if err != nil {
			return false, err
		}
		openedB, err := OpenClosure(ctx, b.Rest, freeVal)
		if err != nil {
			return false, err
		}
		return Equal(ctx, openedA, openedB)

	case value.EmptyRecordTypeVal:
		_, ok := v2.(value.EmptyRecordTypeVal)
		return ok, nil

	case *value.RecordVal:
		b, ok := v2.(*value.RecordVal)
		if !ok || a.Label != b.Label {
			return false, nil
		}
		eqV, err := Equal(ctx, a.Value, b.Value)
		if err != nil || !eqV {
			return false, err
		}
		return Equal(ctx, a.Rest, b.Rest)

	case value.EmptyRecordVal:
		_, ok := v2.(value.EmptyRecordVal)
		return ok, nil

	case *value.RefineVal:
		b, ok := v2.(*value.RefineVal)
		if !ok {
			return false, nil
		}
		eqBase, err := Equal(ctx, a.Base, b.Base)
		if err != nil || !eqBase {
			return false, err
		}
		fresh := binder.Fresh("refine")
		freeVal := &value.Neutral{Head: value.FreeHead{Binder: fresh}}
		openedA, err := OpenClosure(ctx, a.Pred, freeVal)
		if err != nil {
			return false, err
		}
		openedB, err := OpenClosure(ctx, b.Pred, freeVal)
		if err != nil {
			return false, err
		}
		return Equal(ctx, openedA, openedB)

	case *value.Neutral:
		b, ok := v2.(*value.Neutral)
		if !ok {
			return false, nil
		}
		return neutralEqual(ctx, a, b)

	default:
		return false, unexpectedBoundVar(fmt.Sprintf("equal: unhandled value %T", v1))
	}
}

func neutralEqual(ctx Ctx, a, b *value.Neutral) (bool, error) {
	if !headEqual(a.Head, b.Head) {
		return false, nil
	}
	if len(a.Spine) != len(b.Spine) {
		return false, nil
	}
	for i := range a.Spine {
		eq, err := elimEqual(ctx, a.Spine[i], b.Spine[i])
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func headEqual(a, b value.Head) bool {
	switch ha := a.(type) {
	case value.GlobalHead:
		hb, ok := b.(value.GlobalHead)
		return ok && ha.Name == hb.Name
	case value.FreeHead:
		hb, ok := b.(value.FreeHead)
		return ok && ha.Binder.Equal(hb.Binder)
	case value.ExternHead:
		hb, ok := b.(value.ExternHead)
		return ok && ha.Name == hb.Name
	default:
		return false
	}
}

func elimEqual(ctx Ctx, a, b value.Elim) (bool, error) {
	switch ea := a.(type) {
	case value.AppElim:
		eb, ok := b.(value.AppElim)
		if !ok || len(ea.Args) != len(eb.Args) {
			return false, nil
		}
		for i := range ea.Args {
			eq, err := Equal(ctx, ea.Args[i], eb.Args[i])
			if err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case value.ProjElim:
		eb, ok := b.(value.ProjElim)
		return ok && ea.Label == eb.Label, nil
	case value.IfElim:
		eb, ok := b.(value.IfElim)
		if !ok {
			return false, nil
		}
		eqThen, err := Equal(ctx, ea.Then, eb.Then)
		if err != nil || !eqThen {
			return false, err
		}
		return Equal(ctx, ea.Else, eb.Else)
	default:
		return false, nil
	}
}

func litEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *big.Int:
		bv, ok := b.(*big.Int)
		return ok && av.Cmp(bv) == 0
	case float32:
		bv, ok := b.(float32)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	default:
		return false
	}
}
