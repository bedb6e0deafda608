package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/module"
)

// RenderGoStub mechanically emits a Go source file with one struct per
// struct item (host-language stub generation, §1) and one type alias per
// alias item, mirroring each item's shape field-for-field. Endianness is
// dropped — a host Go field has no representation for it, only width and
// signedness carry over.
func RenderGoStub(mod *module.Program) string {
	var body strings.Builder
	usesBigInt := false

	for _, item := range mod.Items {
		switch item.Kind {
		case corenv.GlobalStruct:
			usesBigInt = renderStructStub(&body, item) || usesBigInt
		case corenv.GlobalAlias:
			usesBigInt = renderAliasStub(&body, item) || usesBigInt
		}
	}

	var header strings.Builder
	header.WriteString("// Code generated by ddlc. DO NOT EDIT.\npackage ddlgen\n")
	if usesBigInt {
		header.WriteString("\nimport \"math/big\"\n")
	}
	return header.String() + body.String()
}

func renderStructStub(b *strings.Builder, item *module.Item) bool {
	usesBigInt := false
	fmt.Fprintf(b, "\ntype %s struct {\n", exportName(item.Name))
	for _, f := range fieldList(item.Fields) {
		goTy, big := goType(f.FieldType)
		usesBigInt = usesBigInt || big
		fmt.Fprintf(b, "\t%s %s\n", exportName(f.Label), goTy)
	}
	b.WriteString("}\n")
	return usesBigInt
}

func renderAliasStub(b *strings.Builder, item *module.Item) bool {
	goTy, usesBigInt := goType(item.Body)
	fmt.Fprintf(b, "\ntype %s = %s\n", exportName(item.Name), goTy)
	return usesBigInt
}

// goType maps a core.Term naming a format or host type to the Go type
// that represents its parsed values. The mapping is necessarily lossy:
// endianness has no Go representation, and a refine type's predicate is
// dropped (the Go stub carries the base shape only, not the constraint).
func goType(t core.Term) (string, bool) {
	switch t := t.(type) {
	case *core.FormatPrim:
		return formatPrimGoType(t), false
	case *core.HostPrim:
		return hostPrimGoType(t)
	case *core.ArrayType:
		elem, usesBigInt := goType(t.Elem)
		return "[]" + elem, usesBigInt
	case *core.Refine:
		return goType(t.Base)
	case *core.GlobalRef:
		return exportName(t.Name), false
	default:
		return "interface{}", false
	}
}

func formatPrimGoType(f *core.FormatPrim) string {
	switch f.Kind {
	case core.FormatUnsigned:
		return fmt.Sprintf("uint%d", f.Width)
	case core.FormatSigned:
		return fmt.Sprintf("int%d", f.Width)
	case core.FormatFloat:
		if f.Width == core.Width32 {
			return "float32"
		}
		return "float64"
	default:
		return "interface{}"
	}
}

func hostPrimGoType(h *core.HostPrim) (string, bool) {
	switch h.Kind {
	case core.HostBool:
		return "bool", false
	case core.HostInt:
		return "*big.Int", true
	case core.HostF32:
		return "float32", false
	case core.HostF64:
		return "float64", false
	default:
		return "interface{}", false
	}
}

// exportName capitalizes a label's first rune so generated fields and
// type names are always exported Go identifiers, regardless of the case
// convention used in the source module.
func exportName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
