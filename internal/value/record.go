package value

import (
	"fmt"
	"strings"

	"github.com/ddlc/ddlc/internal/binder"
)

// RecordTypeVal is the WHNF of a dependent record type: a field together
// with a closure for the rest, not yet opened because the binder's
// replacement (a parsed/evaluated field value) isn't known until a caller
// supplies it.
type RecordTypeVal struct {
	Label     string
	Binder    binder.Binder
	FieldType Value
	Rest      Closure // Body is a core.RecordType
}

func (r *RecordTypeVal) valueNode() {}
func (r *RecordTypeVal) String() string {
	return fmt.Sprintf("{ %s : %s ; ... }", r.Label, r.FieldType)
}

// EmptyRecordTypeVal terminates a record-type chain.
type EmptyRecordTypeVal struct{}

func (r EmptyRecordTypeVal) valueNode()      {}
func (r EmptyRecordTypeVal) String() string { return "{}" }

// RecordVal is one field of an evaluated record value chain.
type RecordVal struct {
	Label string
	Value Value
	Rest  Value // *RecordVal or EmptyRecordVal
}

func (r *RecordVal) valueNode() {}
func (r *RecordVal) String() string {
	var parts []string
	var cur Value = r
	for {
		switch v := cur.(type) {
		case *RecordVal:
			parts = append(parts, fmt.Sprintf("%s = %s", v.Label, v.Value))
			cur = v.Rest
		default:
			return "{ " + strings.Join(parts, ", ") + " }"
		}
	}
}

// EmptyRecordVal terminates a record-value chain.
type EmptyRecordVal struct{}

func (r EmptyRecordVal) valueNode()      {}
func (r EmptyRecordVal) String() string { return "{}" }

// Fields flattens a record value chain into an ordered slice of
// label/value pairs, such as a parsed record returned by the format
// interpreter. internal/codegen does not use it: it walks core.RecordType
// terms directly.
func Fields(rv Value) []struct {
	Label string
	Value Value
} {
	var out []struct {
		Label string
		Value Value
	}
	for {
		switch v := rv.(type) {
		case *RecordVal:
			out = append(out, struct {
				Label string
				Value Value
			}{v.Label, v.Value})
			rv = v.Rest
		default:
			return out
		}
	}
}
