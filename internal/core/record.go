package core

import (
	"fmt"
	"strings"

	"github.com/ddlc/ddlc/internal/binder"
)

// RecordType is a dependent record type: an ordered, possibly-empty chain
// of fields where each field's type may mention the binders of preceding
// fields. EmptyRecordType terminates every chain.
type RecordType interface {
	Term
	recordTypeNode()
}

// RecordTypeCons is one field of a dependent record-type chain.
type RecordTypeCons struct {
	Node
	Label     string
	Binder    binder.Binder // binds this field's value in Rest
	FieldType Term
	Rest      RecordType
}

func (r *RecordTypeCons) termNode()       {}
func (r *RecordTypeCons) recordTypeNode() {}
func (r *RecordTypeCons) String() string {
	return fmt.Sprintf("{ %s : %s ; %s", r.Label, r.FieldType, r.Rest)
}

// EmptyRecordType terminates a record-type chain.
type EmptyRecordType struct {
	Node
}

func (r *EmptyRecordType) termNode()       {}
func (r *EmptyRecordType) recordTypeNode() {}
func (r *EmptyRecordType) String() string  { return "}" }

// FieldLabels walks a chain and returns labels in declaration order. Used
// by the elaborator to check for duplicates before building the chain.
func FieldLabels(rt RecordType) []string {
	var labels []string
	for {
		switch t := rt.(type) {
		case *RecordTypeCons:
			labels = append(labels, t.Label)
			rt = t.Rest
		case *EmptyRecordType:
			return labels
		default:
			return labels
		}
	}
}

// RecordVal mirrors a RecordType's shape: an ordered chain of field
// values. EmptyRecordVal terminates every chain.
type RecordVal interface {
	Term
	recordValNode()
}

// RecordValCons is one field of a record value.
type RecordValCons struct {
	Node
	Label string
	Value Term
	Rest  RecordVal
}

func (r *RecordValCons) termNode()      {}
func (r *RecordValCons) recordValNode() {}
func (r *RecordValCons) String() string {
	return fmt.Sprintf("{ %s = %s ; %s", r.Label, r.Value, r.Rest)
}

// EmptyRecordVal terminates a record-value chain.
type EmptyRecordVal struct {
	Node
}

func (r *EmptyRecordVal) termNode()      {}
func (r *EmptyRecordVal) recordValNode() {}
func (r *EmptyRecordVal) String() string { return "}" }

// RecordValString renders a full record value chain as "{ a = 1, b = 2 }",
// used for user-facing pretty-printing (e.g. the REPL and doc generator).
func RecordValString(rv RecordVal) string {
	var parts []string
	for {
		switch v := rv.(type) {
		case *RecordValCons:
			parts = append(parts, fmt.Sprintf("%s = %s", v.Label, v.Value))
			rv = v.Rest
		case *EmptyRecordVal:
			return "{ " + strings.Join(parts, ", ") + " }"
		default:
			return "{ " + strings.Join(parts, ", ") + " }"
		}
	}
}
