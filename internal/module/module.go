// Package module implements the module compiler driver (§4.5): walk a
// parsed module's items in declaration order, elaborate each one against
// the environment built from every item before it, and bind its global
// name so later items (and only later items) can refer to it — forward
// references are rejected by construction, since an item being
// elaborated never sees its own or a later item's binding.
package module

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/elab"
	"github.com/ddlc/ddlc/internal/srcspan"
	"github.com/ddlc/ddlc/internal/surface"
)

// Item is one compiled module item: its resolved type/kind plus, for an
// alias, its elaborated core body (nil for a struct item, whose shape
// lives in Fields instead).
type Item struct {
	Name   string
	Doc    string
	Kind   corenv.GlobalKind
	Type   core.Term
	Body   core.Term      // non-nil only for an alias item
	Fields core.RecordType // non-nil only for a struct item
}

// Program is a fully elaborated module: its items in declaration order
// plus the global environment a later compilation phase (format
// interpreter, codegen, REPL) can resolve names against.
type Program struct {
	Items   []*Item
	Globals *corenv.GlobalEnv
}

// Compile elaborates items in order (§5 Ordering: "elaboration is
// strictly sequential by item index"), threading one Ctx whose Globals
// grows by one entry per item. Diagnostics from every item are
// collected and returned regardless of whether an earlier item failed —
// the driver never aborts the walk on a bad item.
func Compile(items []surface.Item) (*Program, []*diag.Report) {
	sink := diag.NewSink()
	ctx := elab.NewCtx(sink)
	prog := &Program{}

	for _, raw := range items {
		item, entry := compileItem(ctx, raw)
		prog.Items = append(prog.Items, item)
		ctx.Globals = ctx.Globals.Extend(entry)
	}

	prog.Globals = ctx.Globals
	return prog, sink.Reports()
}

func compileItem(ctx elab.Ctx, raw surface.Item) (*Item, *corenv.GlobalEntry) {
	switch it := raw.(type) {
	case *surface.AliasItem:
		return compileAlias(ctx, it)
	case *surface.StructItem:
		return compileStruct(ctx, it)
	default:
		return compileUnknown(ctx, raw)
	}
}

// compileAlias elaborates "alias Name [: Type] = Body;" in check mode
// when annotated, infer mode otherwise, per §4.5.
func compileAlias(ctx elab.Ctx, it *surface.AliasItem) (*Item, *corenv.GlobalEntry) {
	var (
		body core.Term
		typ  core.Term
		err  error
	)
	if it.TypeAnn != nil {
		body, typ, err = elab.Infer(ctx, &surface.Ann{Expr: it.Body, Type: it.TypeAnn})
	} else {
		body, typ, err = elab.Infer(ctx, it.Body)
	}
	if err != nil {
		ctx.Sink.Add(diag.New(diag.EVLUnexpectedBoundVar, "module", err.Error(), nil))
		body, typ = errorFallback(it.Span())
	}

	item := &Item{Name: it.Name, Doc: it.DocText, Kind: corenv.GlobalAlias, Type: typ, Body: body}
	entry := &corenv.GlobalEntry{Name: it.Name, Type: typ, Kind: corenv.GlobalAlias, AliasBody: body, Doc: it.DocText}
	return item, entry
}

// compileStruct elaborates "struct Name { ... }" into a dependent
// record-type chain. The struct's own classifying type is Format: a
// struct item names a shape the format interpreter can parse against, so
// it must satisfy the same Kind-subsumption rule a raw format primitive
// does when used as a nested field or Array element (§4.3's
// Kind-subsumption, concretized here for named record types).
func compileStruct(ctx elab.Ctx, it *surface.StructItem) (*Item, *corenv.GlobalEntry) {
	fields, err := elab.ElaborateStruct(ctx, it)
	if err != nil {
		ctx.Sink.Add(diag.New(diag.EVLUnexpectedBoundVar, "module", err.Error(), nil))
		fields = &core.EmptyRecordType{}
	}
	sp := it.Span()
	typ := core.Term(&core.UniverseLit{Node: core.Node{CoreSpan: sp, OrigSpan: sp}, Level: core.UFormat})

	item := &Item{Name: it.Name, Doc: it.DocText, Kind: corenv.GlobalStruct, Type: typ, Fields: fields}
	entry := &corenv.GlobalEntry{Name: it.Name, Type: typ, Kind: corenv.GlobalStruct, StructFields: fields, Doc: it.DocText}
	return item, entry
}

func compileUnknown(ctx elab.Ctx, raw surface.Item) (*Item, *corenv.GlobalEntry) {
	sp := raw.Span()
	ctx.Sink.Add(diag.New(diag.SYNUnexpectedToken, "module", "unrecognized module item", &sp))
	body, typ := errorFallback(sp)
	name := raw.ItemName()
	item := &Item{Name: name, Doc: raw.Doc(), Kind: corenv.GlobalAlias, Type: typ, Body: body}
	entry := &corenv.GlobalEntry{Name: name, Type: typ, Kind: corenv.GlobalAlias, AliasBody: body, Doc: raw.Doc()}
	return item, entry
}

// errorFallback builds the recovery pair used when a whole item fails to
// elaborate for a non-ordinary (internal) reason — mirroring the
// *core.ErrorTerm sentinel elab.Check/Infer return for an ordinary
// per-subterm failure, so downstream consumers (format, codegen) always
// see a well-formed Item even when Compile had to report an error.
func errorFallback(sp srcspan.Span) (core.Term, core.Term) {
	node := core.Node{CoreSpan: sp, OrigSpan: sp}
	typ := &core.UniverseLit{Node: node, Level: core.UType}
	return &core.ErrorTerm{Node: node, Expected: typ}, typ
}
