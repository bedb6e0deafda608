package corenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/value"
)

func TestGlobalEnvExtendDoesNotMutateParent(t *testing.T) {
	g0 := NewGlobalEnv()
	g1 := g0.Extend(&GlobalEntry{Name: "A", Kind: GlobalAlias})

	_, ok0 := g0.Lookup("A")
	assert.False(t, ok0)

	e1, ok1 := g1.Lookup("A")
	require.True(t, ok1)
	assert.Equal(t, "A", e1.Name)
}

func TestGlobalEnvLaterItemSeesEarlier(t *testing.T) {
	g0 := NewGlobalEnv()
	g1 := g0.Extend(&GlobalEntry{Name: "A", Kind: GlobalStruct})
	g2 := g1.Extend(&GlobalEntry{Name: "B", Kind: GlobalAlias})

	_, ok := g2.Lookup("A")
	assert.True(t, ok)
	_, ok = g2.Lookup("B")
	assert.True(t, ok)
}

func TestLocalEnvShadowing(t *testing.T) {
	var env *LocalEnv
	bOuter := binder.Fresh("x")
	bInner := binder.Fresh("x")

	env = env.Extend("x", bOuter, &core.HostPrim{Kind: core.HostInt})
	env = env.Extend("x", bInner, &core.HostPrim{Kind: core.HostBool})

	got, _, ok := env.Lookup("x")
	require.True(t, ok)
	assert.True(t, got.Equal(bInner))
}

func TestValEnvLookupByBinderIdentity(t *testing.T) {
	var env *ValEnv
	b := binder.Fresh("n")
	env = env.Extend(b, value.Lit{Kind: core.IntLit, Value: 3})

	got, ok := env.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, value.Lit{Kind: core.IntLit, Value: 3}, got)

	other := binder.Fresh("n")
	_, ok2 := env.Lookup(other)
	assert.False(t, ok2)
}
