package eval

import (
	"fmt"

	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/value"
)

// Quote reifies a value back into a core.Term, opening any record-type or
// refine closures with their own binder held abstract (as a neutral free
// variable) rather than eagerly supplying a value — this is what lets
// Normalize produce a full normal form "under binders" as required by
// §4.2. (Equal does not go through Quote: it opens both scopes directly
// with one shared fresh binder via OpenClosure.)
func Quote(ctx Ctx, v value.Value) (core.Term, error) {
	switch t := v.(type) {
	case value.Universe:
		return &core.UniverseLit{Level: t.Level}, nil

	case value.FormatConst:
		return &core.FormatPrim{Kind: t.Kind, Width: t.Width, End: t.End}, nil

	case value.HostPrim:
		return &core.HostPrim{Kind: t.Kind}, nil

	case value.Lit:
		return &core.Lit{Kind: t.Kind, Value: t.Value}, nil

	case *value.ArrayTypeVal:
		lenT, err := Quote(ctx, t.Len)
		if err != nil {
			return nil, err
		}
		elemT, err := Quote(ctx, t.Elem)
		if err != nil {
			return nil, err
		}
		return &core.ArrayType{Len: lenT, Elem: elemT}, nil

	case *value.ArrayVal:
		elems := make([]core.Term, len(t.Elements))
		for i, e := range t.Elements {
			qt, err := Quote(ctx, e)
			if err != nil {
				return nil, err
			}
			elems[i] = qt
		}
		return &core.ArrayVal{Elements: elems}, nil

	case *value.RecordTypeVal:
		opened, err := OpenClosure(ctx, t.Rest, &value.Neutral{Head: value.FreeHead{Binder: t.Binder}})
		if err != nil {
			return nil, err
		}
		restT, err := Quote(ctx, opened)
		if err != nil {
			return nil, err
		}
		rest, ok := restT.(core.RecordType)
		if !ok {
			return nil, unexpectedBoundVar("quoted record-type tail is not a RecordType")
		}
		fieldT, err := Quote(ctx, t.FieldType)
		if err != nil {
			return nil, err
		}
		return &core.RecordTypeCons{Label: t.Label, Binder: t.Binder, FieldType: fieldT, Rest: rest}, nil

	case value.EmptyRecordTypeVal:
		return &core.EmptyRecordType{}, nil

	case *value.RecordVal:
		valT, err := Quote(ctx, t.Value)
		if err != nil {
			return nil, err
		}
		restT, err := Quote(ctx, t.Rest)
		if err != nil {
			return nil, err
		}
		rest, ok := restT.(core.RecordVal)
		if !ok {
			return nil, unexpectedBoundVar("quoted record-value tail is not a RecordVal")
		}
		return &core.RecordValCons{Label: t.Label, Value: valT, Rest: rest}, nil

	case value.EmptyRecordVal:
		return &core.EmptyRecordVal{}, nil

	case *value.RefineVal:
		baseT, err := Quote(ctx, t.Base)
		if err != nil {
			return nil, err
		}
		opened, err := OpenClosure(ctx, t.Pred, &value.Neutral{Head: value.FreeHead{Binder: t.Pred.Binder}})
		if err != nil {
			return nil, err
		}
		predT, err := Quote(ctx, opened)
		if err != nil {
			return nil, err
		}
		return &core.Refine{Base: baseT, Pred: core.CorePredicate{Binder: t.Pred.Binder, Body: predT}}, nil

	case *value.Neutral:
		return quoteNeutral(ctx, t)

	default:
		return nil, unexpectedBoundVar(fmt.Sprintf("quote: unhandled value %T", v))
	}
}

func quoteNeutral(ctx Ctx, n *value.Neutral) (core.Term, error) {
	var head core.Head
	switch h := n.Head.(type) {
	case value.GlobalHead:
		head = core.GlobalHead{Name: h.Name}
	case value.FreeHead:
		if len(n.Spine) == 0 {
			return &core.BoundVar{Binder: h.Binder}, nil
		}
		head = core.FreeHead{Binder: h.Binder}
	case value.ExternHead:
		head = core.ExternHead{Name: h.Name}
	default:
		return nil, unexpectedBoundVar(fmt.Sprintf("quote: unhandled neutral head %T", n.Head))
	}

	spine := make([]core.Elim, 0, len(n.Spine))
	for _, e := range n.Spine {
		switch el := e.(type) {
		case value.AppElim:
			args := make([]core.Term, len(el.Args))
			for i, a := range el.Args {
				qt, err := Quote(ctx, a)
				if err != nil {
					return nil, err
				}
				args[i] = qt
			}
			spine = append(spine, core.AppElim{Args: args})
		case value.ProjElim:
			spine = append(spine, core.ProjElim{Label: el.Label})
		case value.IfElim:
			thenT, err := Quote(ctx, el.Then)
			if err != nil {
				return nil, err
			}
			elseT, err := Quote(ctx, el.Else)
			if err != nil {
				return nil, err
			}
			spine = append(spine, core.IfElim{Then: thenT, Else: elseT})
		default:
			return nil, unexpectedBoundVar(fmt.Sprintf("quote: unhandled neutral elim %T", e))
		}
	}
	return &core.Neutral{Head: head, Spine: spine}, nil
}

// Normalize produces a full normal form of t: Eval to WHNF, then Quote
// reifies under every binder it opens. internal/format does not call it:
// the format interpreter opens a record's tail with OpenClosure and
// dispatches on the resulting weak-head normal form.
func Normalize(ctx Ctx, t core.Term) (core.Term, error) {
	v, err := Eval(ctx, t)
	if err != nil {
		return nil, err
	}
	return Quote(ctx, v)
}
