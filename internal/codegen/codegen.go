// Package codegen implements the doc and host-stub generators (§4.8,
// supplemented from original_source/crates/ddl-compile-doc/src/lib.rs):
// a mechanical traversal over a compiled module.Program that never
// touches the elaborator or evaluator, only the already-elaborated
// core.Term shapes a Program exposes.
package codegen

import (
	"fmt"
	"strings"

	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/module"
)

// RenderDocs renders mod as a Markdown document: one section per item, a
// field table for each struct. genVersion is stamped into the header as
// an explicit parameter rather than a package var (Design Notes:
// "pass it as an explicit parameter"), so the same Program renders
// identically regardless of when or by what build this function runs.
func RenderDocs(mod *module.Program, genVersion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Module reference\n\n_generated by ddlc %s_\n", genVersion)

	for _, item := range mod.Items {
		b.WriteString("\n")
		switch item.Kind {
		case corenv.GlobalStruct:
			renderStructDoc(&b, item)
		case corenv.GlobalAlias:
			renderAliasDoc(&b, item)
		}
	}
	return b.String()
}

func renderStructDoc(b *strings.Builder, item *module.Item) {
	fmt.Fprintf(b, "## struct %s\n\n", item.Name)
	if item.Doc != "" {
		fmt.Fprintf(b, "%s\n\n", item.Doc)
	}
	fields := fieldList(item.Fields)
	if len(fields) == 0 {
		b.WriteString("_(no fields)_\n")
		return
	}
	b.WriteString("| Field | Type |\n")
	b.WriteString("|---|---|\n")
	for _, f := range fields {
		fmt.Fprintf(b, "| %s | `%s` |\n", f.Label, f.FieldType.String())
	}
}

func renderAliasDoc(b *strings.Builder, item *module.Item) {
	fmt.Fprintf(b, "## alias %s\n\n", item.Name)
	if item.Doc != "" {
		fmt.Fprintf(b, "%s\n\n", item.Doc)
	}
	fmt.Fprintf(b, "Type: `%s`\n", item.Type.String())
}

// namedField is one flattened entry of a RecordType chain.
type namedField struct {
	Label     string
	FieldType core.Term
}

// fieldList walks a dependent record-type chain into declaration order.
// Later fields' types may reference earlier binders (§3); this traversal
// only needs the labels and raw type terms, not their bound values, so it
// never needs to evaluate anything.
func fieldList(rt core.RecordType) []namedField {
	var out []namedField
	for {
		switch t := rt.(type) {
		case *core.RecordTypeCons:
			out = append(out, namedField{Label: t.Label, FieldType: t.FieldType})
			rt = t.Rest
		default:
			return out
		}
	}
}
