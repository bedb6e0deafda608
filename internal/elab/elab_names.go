package elab

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/srcspan"
	"github.com/ddlc/ddlc/internal/surface"
)

// inferName resolves a name per §4.3: local binder environment first,
// then module globals, then the fixed table of builtin constants
// (universes, host/format primitives, booleans) — anything else is
// UnboundName.
func inferName(c Ctx, n *surface.Name) (core.Term, core.Term, error) {
	sp := n.Span()

	if b, typ, ok := c.Locals.Lookup(n.Ident); ok {
		return &core.BoundVar{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Binder: b}, typ, nil
	}

	if entry, ok := c.Globals.Lookup(n.Ident); ok {
		return &core.GlobalRef{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Name: n.Ident}, entry.Type, nil
	}

	if term, typ, ok := builtin(n.Ident, sp); ok {
		return term, typ, nil
	}

	c.report(diag.SCPUnboundName, "unbound name "+n.Ident, sp)
	return errorTerm(nil, sp), nil, nil
}

// builtin looks up one of the fixed constant names every module sees
// without declaring it: the three universes, the host primitive types,
// every format primitive, and the two boolean literals.
func builtin(name string, sp srcspan.Span) (core.Term, core.Term, bool) {
	kindTy := universeTerm(core.UKind, sp)

	switch name {
	case "Type":
		return universeTerm(core.UType, sp), kindTy, true
	case "Format":
		return universeTerm(core.UFormat, sp), kindTy, true
	case "Kind":
		return kindTy, kindTy, true
	case "Bool":
		return &core.HostPrim{Node: node(sp), Kind: core.HostBool}, universeTerm(core.UType, sp), true
	case "Int":
		return hostIntType(sp), universeTerm(core.UType, sp), true
	case "F32":
		return hostF32Type(sp), universeTerm(core.UType, sp), true
	case "F64":
		return hostF64Type(sp), universeTerm(core.UType, sp), true
	case "true":
		return &core.Lit{Node: node(sp), Kind: core.BoolLit, Value: true}, hostBoolType(sp), true
	case "false":
		return &core.Lit{Node: node(sp), Kind: core.BoolLit, Value: false}, hostBoolType(sp), true
	}

	if prim, ok := formatPrimByName(name, sp); ok {
		return prim, universeTerm(core.UFormat, sp), true
	}
	return nil, nil, false
}

func node(sp srcspan.Span) core.Node {
	return core.Node{CoreSpan: sp, OrigSpan: sp}
}

var formatPrimNames = map[string]struct {
	kind  core.FormatPrimKind
	width core.IntWidth
	end   core.Endian
}{
	"U8":    {core.FormatUnsigned, core.Width8, core.LittleEndian},
	"U16Le": {core.FormatUnsigned, core.Width16, core.LittleEndian},
	"U16Be": {core.FormatUnsigned, core.Width16, core.BigEndian},
	"U32Le": {core.FormatUnsigned, core.Width32, core.LittleEndian},
	"U32Be": {core.FormatUnsigned, core.Width32, core.BigEndian},
	"U64Le": {core.FormatUnsigned, core.Width64, core.LittleEndian},
	"U64Be": {core.FormatUnsigned, core.Width64, core.BigEndian},
	"S8":    {core.FormatSigned, core.Width8, core.LittleEndian},
	"S16Le": {core.FormatSigned, core.Width16, core.LittleEndian},
	"S16Be": {core.FormatSigned, core.Width16, core.BigEndian},
	"S32Le": {core.FormatSigned, core.Width32, core.LittleEndian},
	"S32Be": {core.FormatSigned, core.Width32, core.BigEndian},
	"S64Le": {core.FormatSigned, core.Width64, core.LittleEndian},
	"S64Be": {core.FormatSigned, core.Width64, core.BigEndian},
	"F32Le": {core.FormatFloat, core.Width32, core.LittleEndian},
	"F32Be": {core.FormatFloat, core.Width32, core.BigEndian},
	"F64Le": {core.FormatFloat, core.Width64, core.LittleEndian},
	"F64Be": {core.FormatFloat, core.Width64, core.BigEndian},
}

func formatPrimByName(name string, sp srcspan.Span) (*core.FormatPrim, bool) {
	spec, ok := formatPrimNames[name]
	if !ok {
		return nil, false
	}
	return &core.FormatPrim{Node: node(sp), Kind: spec.kind, Width: spec.width, End: spec.end}, true
}
