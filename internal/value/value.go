// Package value defines weak-head-normal-form values: the result of
// internal/eval reducing a core.Term. Values are immutable once built and
// shared structurally; nothing in this package mutates a Value after
// construction.
package value

import (
	"fmt"

	"github.com/ddlc/ddlc/internal/core"
)

// Value is any weak-head-normal-form result of evaluation.
type Value interface {
	String() string
	valueNode()
}

// Universe is a universe value (Type, Format, or Kind).
type Universe struct {
	Level core.Universe
}

func (u Universe) valueNode()      {}
func (u Universe) String() string { return u.Level.String() }

// FormatConst is an evaluated primitive format constant (U8, F64Be, ...).
// Format constants never reduce further, so the value carries the same
// shape as the core constructor.
type FormatConst struct {
	Kind  core.FormatPrimKind
	Width core.IntWidth
	End   core.Endian
}

func (f FormatConst) valueNode() {}
func (f FormatConst) String() string {
	return (&core.FormatPrim{Kind: f.Kind, Width: f.Width, End: f.End}).String()
}

// ByteSize returns the number of bytes this primitive reads.
func (f FormatConst) ByteSize() int { return int(f.Width) / 8 }

// HostPrim is an evaluated host primitive type (Bool, Int, F32, F64).
type HostPrim struct {
	Kind core.HostPrimKind
}

func (h HostPrim) valueNode() {}
func (h HostPrim) String() string { return (&core.HostPrim{Kind: h.Kind}).String() }

// Lit is a literal value: bool, arbitrary-precision int (*big.Int), or a
// float32/float64, matching core.LitKind.
type Lit struct {
	Kind  core.LitKind
	Value interface{}
}

func (l Lit) valueNode() {}
func (l Lit) String() string { return fmt.Sprintf("%v", l.Value) }
