package value

import (
	"strings"

	"github.com/ddlc/ddlc/internal/binder"
)

// Head is the stuck head of a neutral value.
type Head interface {
	String() string
	headNode()
}

// GlobalHead names a struct item; struct items are opaque and never
// unfold, so any reference to one is neutral.
type GlobalHead struct {
	Name string
}

func (h GlobalHead) headNode()      {}
func (h GlobalHead) String() string { return h.Name }

// FreeHead is an as-yet-unsubstituted binder, the result of evaluating
// under an open scope (e.g. while normalizing a lambda-shaped body for
// Equal's eta-expansion).
type FreeHead struct {
	Binder binder.Binder
}

func (h FreeHead) headNode()      {}
func (h FreeHead) String() string { return h.Binder.Label }

// ExternHead is a host-supplied hook stuck on a neutral argument.
type ExternHead struct {
	Name string
}

func (h ExternHead) headNode()      {}
func (h ExternHead) String() string { return "extern:" + h.Name }

// Elim is one eliminator in a neutral spine.
type Elim interface {
	String() string
	elimNode()
}

// AppElim applies a stuck head to evaluated arguments.
type AppElim struct {
	Args []Value
}

func (e AppElim) elimNode() {}
func (e AppElim) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ProjElim projects a field out of a stuck record value.
type ProjElim struct {
	Label string
}

func (e ProjElim) elimNode()      {}
func (e ProjElim) String() string { return "." + e.Label }

// IfElim is a stuck "if" pending on a neutral scrutinee. Both branches are
// evaluated eagerly under the same environment the "if" was evaluated in
// — safe because the language is strongly normalising (§4.2) — so Equal
// can compare them structurally without re-opening anything.
type IfElim struct {
	Then Value
	Else Value
}

func (e IfElim) elimNode()      {}
func (e IfElim) String() string { return " then ... else ..." }

// Neutral is a stuck computation.
type Neutral struct {
	Head  Head
	Spine []Elim
}

func (n *Neutral) valueNode() {}
func (n *Neutral) String() string {
	var sb strings.Builder
	sb.WriteString(n.Head.String())
	for _, e := range n.Spine {
		sb.WriteString(e.String())
	}
	return sb.String()
}
