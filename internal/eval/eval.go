// Package eval implements the evaluator/normaliser (§4.2): Eval reduces a
// core.Term to weak-head normal form, Normalize produces a full normal
// form, and Equal decides definitional equality. The language is strongly
// normalising (no recursion, no fixpoints, array lengths are literals), so
// every function here terminates on well-typed input; non-termination on
// ill-typed input is a caller error, not something this package guards
// against.
package eval

import (
	"fmt"
	"math/big"

	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/value"
)

// Ctx bundles the two evaluation-time environments Eval needs: the
// module's globals (for unfolding aliases on demand, per §4.2) and the
// current chain of bound-variable values.
type Ctx struct {
	Globals     *corenv.GlobalEnv
	GlobalCache *corenv.GlobalValues
	Locals      *corenv.ValEnv
}

// WithLocals returns a copy of c with Locals replaced.
func (c Ctx) WithLocals(l *corenv.ValEnv) Ctx {
	c.Locals = l
	return c
}

func unexpectedBoundVar(msg string) error {
	return diag.Wrap(diag.New(diag.EVLUnexpectedBoundVar, "eval", msg, nil))
}

// Eval reduces t to weak-head normal form under ctx.
func Eval(ctx Ctx, t core.Term) (value.Value, error) {
	switch n := t.(type) {
	case *core.UniverseLit:
		return value.Universe{Level: n.Level}, nil

	case *core.BoundVar:
		v, ok := ctx.Locals.Lookup(n.Binder)
		if !ok {
			return nil, unexpectedBoundVar(fmt.Sprintf("bound variable %q escaped its scope", n.Binder.Label))
		}
		return v, nil

	case *core.GlobalRef:
		return evalGlobalRef(ctx, n)

	case *core.Ann:
		return Eval(ctx, n.Expr)

	case *core.FormatPrim:
		return value.FormatConst{Kind: n.Kind, Width: n.Width, End: n.End}, nil

	case *core.HostPrim:
		return value.HostPrim{Kind: n.Kind}, nil

	case *core.Lit:
		return value.Lit{Kind: n.Kind, Value: n.Value}, nil

	case *core.If:
		return evalIf(ctx, n)

	case *core.ArrayType:
		lenV, err := Eval(ctx, n.Len)
		if err != nil {
			return nil, err
		}
		elemV, err := Eval(ctx, n.Elem)
		if err != nil {
			return nil, err
		}
		return &value.ArrayTypeVal{Len: lenV, Elem: elemV}, nil

	case *core.ArrayVal:
		elems := make([]value.Value, len(n.Elements))
		for i, e := range n.Elements {
			v, err := Eval(ctx, e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &value.ArrayVal{Elements: elems}, nil

	case *core.RecordTypeCons:
		fieldV, err := Eval(ctx, n.FieldType)
		if err != nil {
			return nil, err
		}
		return &value.RecordTypeVal{
			Label:     n.Label,
			Binder:    n.Binder,
			FieldType: fieldV,
			Rest:      value.Closure{Binder: n.Binder, Body: core.Term(n.Rest), Env: ctx.Locals},
		}, nil

	case *core.EmptyRecordType:
		return value.EmptyRecordTypeVal{}, nil

	case *core.RecordValCons:
		fieldV, err := Eval(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		restV, err := Eval(ctx, n.Rest)
		if err != nil {
			return nil, err
		}
		return &value.RecordVal{Label: n.Label, Value: fieldV, Rest: restV}, nil

	case *core.EmptyRecordVal:
		return value.EmptyRecordVal{}, nil

	case *core.Refine:
		baseV, err := Eval(ctx, n.Base)
		if err != nil {
			return nil, err
		}
		return &value.RefineVal{
			Base: baseV,
			Pred: value.Closure{Binder: n.Pred.Binder, Body: core.Term(n.Pred.Body), Env: ctx.Locals},
		}, nil

	case *core.Neutral:
		return evalNeutral(ctx, n)

	case *core.ErrorTerm:
		return &value.Neutral{Head: value.GlobalHead{Name: "<error>"}}, nil

	default:
		return nil, unexpectedBoundVar(fmt.Sprintf("eval: unhandled core term %T", t))
	}
}

func evalGlobalRef(ctx Ctx, n *core.GlobalRef) (value.Value, error) {
	entry, ok := ctx.Globals.Lookup(n.Name)
	if !ok {
		return nil, unexpectedBoundVar(fmt.Sprintf("global %q not bound (elaborator should have rejected this)", n.Name))
	}
	if entry.Kind == corenv.GlobalStruct {
		return &value.Neutral{Head: value.GlobalHead{Name: n.Name}}, nil
	}
	if cached, ok := ctx.GlobalCache.Get(n.Name); ok {
		return cached, nil
	}
	v, err := Eval(Ctx{Globals: ctx.Globals, GlobalCache: ctx.GlobalCache, Locals: nil}, entry.AliasBody)
	if err != nil {
		return nil, err
	}
	ctx.GlobalCache.Set(n.Name, v)
	return v, nil
}

func evalIf(ctx Ctx, n *core.If) (value.Value, error) {
	condV, err := Eval(ctx, n.Cond)
	if err != nil {
		return nil, err
	}
	switch c := condV.(type) {
	case value.Lit:
		b, ok := c.Value.(bool)
		if !ok {
			return nil, unexpectedBoundVar("if-condition literal is not boolean-shaped")
		}
		if b {
			return Eval(ctx, n.Then)
		}
		return Eval(ctx, n.Else)
	case *value.Neutral:
		thenV, err := Eval(ctx, n.Then)
		if err != nil {
			return nil, err
		}
		elseV, err := Eval(ctx, n.Else)
		if err != nil {
			return nil, err
		}
		spine := append(append([]value.Elim{}, c.Spine...), value.IfElim{Then: thenV, Else: elseV})
		return &value.Neutral{Head: c.Head, Spine: spine}, nil
	default:
		return nil, unexpectedBoundVar(fmt.Sprintf("if-condition reduced to non-boolean value %T", condV))
	}
}

func evalNeutral(ctx Ctx, n *core.Neutral) (value.Value, error) {
	var head value.Head
	switch h := n.Head.(type) {
	case core.GlobalHead:
		head = value.GlobalHead{Name: h.Name}
	case core.FreeHead:
		head = value.FreeHead{Binder: h.Binder}
	case core.ExternHead:
		head = value.ExternHead{Name: h.Name}
	default:
		return nil, unexpectedBoundVar(fmt.Sprintf("eval: unhandled neutral head %T", n.Head))
	}
	spine := make([]value.Elim, 0, len(n.Spine))
	for _, e := range n.Spine {
		switch el := e.(type) {
		case core.AppElim:
			args := make([]value.Value, len(el.Args))
			for i, a := range el.Args {
				v, err := Eval(ctx, a)
				if err != nil {
					return nil, err
				}
				args[i] = v
			}
			spine = append(spine, value.AppElim{Args: args})
		case core.ProjElim:
			spine = append(spine, value.ProjElim{Label: el.Label})
		case core.IfElim:
			thenV, err := Eval(ctx, el.Then)
			if err != nil {
				return nil, err
			}
			elseV, err := Eval(ctx, el.Else)
			if err != nil {
				return nil, err
			}
			spine = append(spine, value.IfElim{Then: thenV, Else: elseV})
		default:
			return nil, unexpectedBoundVar(fmt.Sprintf("eval: unhandled neutral elim %T", e))
		}
	}
	return &value.Neutral{Head: head, Spine: spine}, nil
}

// OpenClosure substitutes arg for the closure's binder and evaluates its
// body under the resulting environment. Used whenever a record field (or
// a refine predicate) needs its Rest opened with a known value — the
// dependent-substitution step required by §3/§4.4.
func OpenClosure(ctx Ctx, cl value.Closure, arg value.Value) (value.Value, error) {
	body, ok := cl.Body.(core.Term)
	if !ok {
		return nil, unexpectedBoundVar("closure body is not a core.Term")
	}
	var base *corenv.ValEnv
	if cl.Env != nil {
		base, ok = cl.Env.(*corenv.ValEnv)
		if !ok {
			return nil, unexpectedBoundVar("closure environment is not a *corenv.ValEnv")
		}
	}
	extended := base.Extend(cl.Binder, arg)
	return Eval(ctx.WithLocals(extended), body)
}

// bigIntOf extracts the arbitrary-precision integer from an Int literal
// value, used by internal/format when decoding an Array's length.
func bigIntOf(v value.Value) (*big.Int, bool) {
	lit, ok := v.(value.Lit)
	if !ok || lit.Kind != core.IntLit {
		return nil, false
	}
	n, ok := lit.Value.(*big.Int)
	return n, ok
}

// BigIntOf is the exported form of bigIntOf for callers outside this
// package (internal/format needs it to decode Array lengths).
func BigIntOf(v value.Value) (*big.Int, bool) { return bigIntOf(v) }
