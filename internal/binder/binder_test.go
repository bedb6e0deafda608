package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreshBindersAreDistinctEvenWithSameLabel(t *testing.T) {
	a := Fresh("x")
	b := Fresh("x")
	assert.False(t, a.Equal(b))
	assert.Equal(t, "x", a.Label)
	assert.Equal(t, "x", b.Label)
}

func TestBinderEqualIsReflexive(t *testing.T) {
	a := Fresh("n")
	assert.True(t, a.Equal(a))
}

func TestScopeOpenAppliesSubstAtTheBoundOccurrence(t *testing.T) {
	x := Fresh("x")
	// body is a toy []string "term": the binder appears as its label.
	scope := NewScope(x, []string{"before", x.Label, "after"})

	subst := func(body []string, b Binder, repl []string) []string {
		out := make([]string, 0, len(body))
		for _, tok := range body {
			if tok == b.Label {
				out = append(out, repl...)
				continue
			}
			out = append(out, tok)
		}
		return out
	}

	got := scope.Open([]string{"REPLACED"}, subst)
	assert.Equal(t, []string{"before", "REPLACED", "after"}, got)
}

func TestSubstExtendDoesNotMutateParent(t *testing.T) {
	a := Fresh("a")
	b := Fresh("b")

	base := Subst[int]{}
	withA := base.Extend(a, 1)
	withAB := withA.Extend(b, 2)

	_, hasB := withA.Lookup(b)
	assert.False(t, hasB)

	v, ok := withAB.Lookup(a)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
