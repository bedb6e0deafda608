// Package binder implements the abstract binder facility every later
// compiler stage builds on: alpha-equivalent binders with capture-avoiding
// substitution, fresh-variable generation, and closure storage that
// defers substitution until a scope is actually opened.
package binder

import "sync/atomic"

var nextID uint64

// Binder is a single bound name. Its Label is kept only for
// pretty-printing; equality and scoping both go through ID, which is
// unique for the process lifetime.
type Binder struct {
	Label string
	ID    uint64
}

// Fresh creates a new binder with a process-unique identity.
func Fresh(label string) Binder {
	return Binder{Label: label, ID: atomic.AddUint64(&nextID, 1)}
}

// Equal reports whether two binders denote the same bound occurrence.
// This is the definitional-equality primitive on binders: two binders
// with the same Label but different ID are NOT equal, and alpha-renaming
// a binder never changes its ID.
func (b Binder) Equal(other Binder) bool {
	return b.ID == other.ID
}

func (b Binder) String() string {
	return b.Label
}
