// Package format implements the format interpreter (§4.4): given a
// core type evaluated to weak-head normal form and a seekable byte
// source, produce a core value. Dispatch is by the value's head exactly
// as spec.md's table prescribes; anything the table doesn't name (a
// closure, a host primitive, a refine type, an un-stuck neutral) fails
// with InvalidFormat rather than being silently accepted.
package format

import (
	"math"
	"math/big"

	"github.com/ddlc/ddlc/internal/bytesource"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/eval"
	"github.com/ddlc/ddlc/internal/value"
)

// maxArrayLen bounds a decoded Array length to a platform-portable
// ceiling (§9 Design Notes) rather than the full range of a Go int,
// so the same module behaves identically on 32- and 64-bit builds.
const maxArrayLen = math.MaxInt32

// Interpret reduces ty (already WHNF, as produced by eval.Eval) against
// src, reading exactly the bytes each primitive/array/record field
// requires and recursing per spec.md §4.4's dispatch table. ctx supplies
// the evaluator needed to open a dependent record's tail closure against
// each field's freshly-parsed value.
func Interpret(ctx eval.Ctx, ty value.Value, src bytesource.Source) (value.Value, error) {
	switch t := ty.(type) {
	case value.FormatConst:
		return interpretPrim(t, src)

	case *value.ArrayTypeVal:
		return interpretArray(ctx, t, src)

	case *value.RecordTypeVal:
		return interpretRecord(ctx, t, src)

	case value.EmptyRecordTypeVal:
		return value.EmptyRecordVal{}, nil

	case *value.Neutral:
		if rt, ok := resolveStructHead(ctx, t); ok {
			return Interpret(ctx, rt, src)
		}
		return nil, invalidFormat(ty)

	default:
		return nil, invalidFormat(ty)
	}
}

// resolveStructHead unfolds a bare reference to a struct item (a global
// that Eval deliberately leaves neutral — see value.GlobalHead's doc
// comment) back into its record-type shape, so an alias or field that
// merely names an earlier struct ("alias Packet = Header;") is still
// parseable. Anything beyond a bare global head (an applied or projected
// neutral) is left for the invalidFormat fallback.
func resolveStructHead(ctx eval.Ctx, n *value.Neutral) (value.Value, bool) {
	if len(n.Spine) != 0 {
		return nil, false
	}
	gh, ok := n.Head.(value.GlobalHead)
	if !ok {
		return nil, false
	}
	entry, ok := ctx.Globals.Lookup(gh.Name)
	if !ok || entry.Kind != corenv.GlobalStruct {
		return nil, false
	}
	v, err := eval.Eval(ctx, entry.StructFields)
	if err != nil {
		return nil, false
	}
	return v, true
}

func interpretPrim(fc value.FormatConst, src bytesource.Source) (value.Value, error) {
	buf, err := readExact(src, fc.ByteSize())
	if err != nil {
		return nil, err
	}
	switch fc.Kind {
	case core.FormatUnsigned:
		return value.Lit{Kind: core.IntLit, Value: decodeUint(buf, fc.End)}, nil
	case core.FormatSigned:
		return value.Lit{Kind: core.IntLit, Value: decodeSigned(buf, fc.End, fc.Width)}, nil
	case core.FormatFloat:
		return decodeFloat(buf, fc.End, fc.Width), nil
	default:
		return nil, invalidFormat(fc)
	}
}

func interpretArray(ctx eval.Ctx, at *value.ArrayTypeVal, src bytesource.Source) (value.Value, error) {
	n, ok := eval.BigIntOf(at.Len)
	if !ok {
		return nil, invalidFormat(at)
	}
	count, err := arrayCount(n)
	if err != nil {
		return nil, err
	}
	elems := make([]value.Value, count)
	for i := 0; i < count; i++ {
		v, err := Interpret(ctx, at.Elem, src)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &value.ArrayVal{Elements: elems}, nil
}

// arrayCount converts an arbitrary-precision decoded length to a machine
// count, rejecting negative lengths and lengths beyond maxArrayLen with
// BadArrayLength (§9 Design Notes) instead of letting a big.Int-to-int
// conversion silently wrap or panic.
func arrayCount(n *big.Int) (int, error) {
	if n.Sign() < 0 {
		return 0, badArrayLength(n)
	}
	if !n.IsInt64() || n.Int64() > maxArrayLen {
		return 0, badArrayLength(n)
	}
	return int(n.Int64()), nil
}

func interpretRecord(ctx eval.Ctx, rt *value.RecordTypeVal, src bytesource.Source) (value.Value, error) {
	fieldVal, err := Interpret(ctx, rt.FieldType, src)
	if err != nil {
		return nil, err
	}
	restTy, err := eval.OpenClosure(ctx, rt.Rest, fieldVal)
	if err != nil {
		return nil, err
	}
	restVal, err := Interpret(ctx, restTy, src)
	if err != nil {
		return nil, err
	}
	return &value.RecordVal{Label: rt.Label, Value: fieldVal, Rest: restVal}, nil
}

func invalidFormat(ty value.Value) error {
	return diag.Wrap(diag.New(diag.FMTInvalidFormat, "format", "not a format: "+ty.String(), nil))
}

func badArrayLength(n *big.Int) error {
	return diag.Wrap(diag.New(diag.FMTBadArrayLength, "format", "array length out of range: "+n.String(), nil))
}
