package core

import (
	"fmt"
	"strings"

	"github.com/ddlc/ddlc/internal/binder"
)

// Head is the stuck head of a neutral term: a global struct item (which
// never unfolds, unlike an alias), a free binder that has not yet been
// substituted, or an extern hook supplied by the host.
type Head interface {
	headNode()
	String() string
}

// GlobalHead is a reference to a struct item. Struct items are opaque:
// Eval never unfolds them, so any GlobalHead naming one is neutral.
type GlobalHead struct {
	Name string
}

func (h GlobalHead) headNode()      {}
func (h GlobalHead) String() string { return h.Name }

// FreeHead is a binder occurrence with no substitution in scope yet; it
// appears only transiently while normalizing under an open binder.
type FreeHead struct {
	Binder binder.Binder
}

func (h FreeHead) headNode()      {}
func (h FreeHead) String() string { return h.Binder.Label }

// ExternHead is a host-supplied primitive hook stuck on missing
// information (e.g. an argument that is itself neutral).
type ExternHead struct {
	Name string
}

func (h ExternHead) headNode()      {}
func (h ExternHead) String() string { return "extern:" + h.Name }

// Elim is one eliminator in a neutral spine.
type Elim interface {
	elimNode()
	String() string
}

// AppElim applies a stuck head to arguments.
type AppElim struct {
	Args []Term
}

func (e AppElim) elimNode() {}
func (e AppElim) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ProjElim projects a field out of a stuck record.
type ProjElim struct {
	Label string
}

func (e ProjElim) elimNode()      {}
func (e ProjElim) String() string { return "." + e.Label }

// IfElim is a stuck "if" whose scrutinee is neutral; Then/Else remain
// unevaluated terms rather than values so the whole neutral form stays a
// Term (used during normalization, not evaluation — eval represents a
// stuck If as a value.Neutral carrying a value.IfElim instead).
type IfElim struct {
	Then Term
	Else Term
}

func (e IfElim) elimNode()      {}
func (e IfElim) String() string { return fmt.Sprintf(" then %s else %s", e.Then, e.Else) }

// Neutral is a stuck computation: a head under a spine of eliminators.
type Neutral struct {
	Node
	Head  Head
	Spine []Elim
}

func (n *Neutral) termNode() {}
func (n *Neutral) String() string {
	var sb strings.Builder
	sb.WriteString(n.Head.String())
	for _, e := range n.Spine {
		sb.WriteString(e.String())
	}
	return sb.String()
}
