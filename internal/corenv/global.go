// Package corenv implements the persistent, append-only environments used
// by elaboration and evaluation: a module-level global environment, a
// local binder environment for name resolution during elaboration, and a
// value environment threading bound values through evaluation. All three
// grow by prepending a frame onto a shared, immutable tail — exactly the
// "persistent list... no back-references needed" shape called for in
// SPEC_FULL.md's design notes.
package corenv

import (
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/value"
)

// GlobalKind distinguishes the two module-item forms.
type GlobalKind int

const (
	GlobalAlias GlobalKind = iota
	GlobalStruct
)

// GlobalEntry is one module item's binding in the global environment.
type GlobalEntry struct {
	Name         string
	Type         core.Term
	Kind         GlobalKind
	AliasBody    core.Term      // non-nil only for GlobalAlias
	StructFields core.RecordType // non-nil only for GlobalStruct
	Doc          string
}

// GlobalEnv is the append-only chain of module items visible to elaborator
// and evaluator. Item i is visible only to items j > i (§3 "Modules and
// items"), enforced by building a new GlobalEnv per item rather than
// mutating a shared one.
type GlobalEnv struct {
	parent  *GlobalEnv
	entry   *GlobalEntry
	byName  map[string]*GlobalEntry // flattened lookup cache, copied eagerly by Extend
}

// NewGlobalEnv returns the empty global environment.
func NewGlobalEnv() *GlobalEnv {
	return &GlobalEnv{byName: map[string]*GlobalEntry{}}
}

// Extend returns a new environment with entry appended, leaving the
// receiver untouched.
func (g *GlobalEnv) Extend(entry *GlobalEntry) *GlobalEnv {
	flat := make(map[string]*GlobalEntry, len(g.byName)+1)
	for k, v := range g.byName {
		flat[k] = v
	}
	flat[entry.Name] = entry
	return &GlobalEnv{parent: g, entry: entry, byName: flat}
}

// Lookup finds a global by name, returning (entry, true) if it is bound in
// this environment or one of its ancestors.
func (g *GlobalEnv) Lookup(name string) (*GlobalEntry, bool) {
	e, ok := g.byName[name]
	return e, ok
}

// GlobalValues is the evaluation-time counterpart: a cache mapping each
// alias's name to its already-reduced value, populated on first
// evaluation of the corresponding GlobalRef. Struct items never appear
// here — their references always evaluate to a neutral GlobalHead.
type GlobalValues struct {
	cache map[string]value.Value
}

// NewGlobalValues returns an empty alias-value cache.
func NewGlobalValues() *GlobalValues {
	return &GlobalValues{cache: map[string]value.Value{}}
}

func (g *GlobalValues) Get(name string) (value.Value, bool) {
	v, ok := g.cache[name]
	return v, ok
}

func (g *GlobalValues) Set(name string, v value.Value) {
	g.cache[name] = v
}
