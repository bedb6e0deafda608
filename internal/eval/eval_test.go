package eval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlc/ddlc/internal/binder"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/value"
)

func freshCtx() Ctx {
	return Ctx{Globals: corenv.NewGlobalEnv(), GlobalCache: corenv.NewGlobalValues()}
}

func intLit(n int64) *core.Lit {
	return &core.Lit{Kind: core.IntLit, Value: big.NewInt(n)}
}

func TestEvalLiteralsAndIf(t *testing.T) {
	ctx := freshCtx()

	v, err := Eval(ctx, &core.Lit{Kind: core.BoolLit, Value: true})
	require.NoError(t, err)
	assert.Equal(t, value.Lit{Kind: core.BoolLit, Value: true}, v)

	ifTerm := &core.If{
		Cond: &core.Lit{Kind: core.BoolLit, Value: true},
		Then: intLit(1),
		Else: intLit(2),
	}
	v, err = Eval(ctx, ifTerm)
	require.NoError(t, err)
	got := v.(value.Lit).Value.(*big.Int)
	assert.Equal(t, int64(1), got.Int64())
}

func TestEvalBoundVarUnexpectedProducesEvlError(t *testing.T) {
	ctx := freshCtx()
	b := binder.Fresh("x")
	_, err := Eval(ctx, &core.BoundVar{Binder: b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVL001")
}

func TestEvalGlobalRefUnfoldsAliasButNotStruct(t *testing.T) {
	ctx := freshCtx()
	ctx.Globals = ctx.Globals.Extend(&corenv.GlobalEntry{
		Name: "Answer", Kind: corenv.GlobalAlias, AliasBody: intLit(42),
	})
	ctx.Globals = ctx.Globals.Extend(&corenv.GlobalEntry{
		Name: "Header", Kind: corenv.GlobalStruct,
	})

	v, err := Eval(ctx, &core.GlobalRef{Name: "Answer"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.(value.Lit).Value.(*big.Int).Int64())

	v2, err := Eval(ctx, &core.GlobalRef{Name: "Header"})
	require.NoError(t, err)
	neutral, ok := v2.(*value.Neutral)
	require.True(t, ok)
	assert.Equal(t, value.GlobalHead{Name: "Header"}, neutral.Head)
}

func TestRecordTypeDependentSubstitutionViaOpenClosure(t *testing.T) {
	ctx := freshCtx()
	u8 := &core.FormatPrim{Kind: core.FormatUnsigned, Width: core.Width8}
	lenBinder := binder.Fresh("len")

	rt := &core.RecordTypeCons{
		Label:     "len",
		Binder:    lenBinder,
		FieldType: u8,
		Rest: &core.RecordTypeCons{
			Label:     "data",
			Binder:    binder.Fresh("data"),
			FieldType: &core.ArrayType{Len: &core.BoundVar{Binder: lenBinder}, Elem: u8},
			Rest:      &core.EmptyRecordType{},
		},
	}

	v, err := Eval(ctx, rt)
	require.NoError(t, err)
	rtv := v.(*value.RecordTypeVal)
	assert.Equal(t, "len", rtv.Label)

	opened, err := OpenClosure(ctx, rtv.Rest, value.Lit{Kind: core.IntLit, Value: big.NewInt(3)})
	require.NoError(t, err)
	next := opened.(*value.RecordTypeVal)
	assert.Equal(t, "data", next.Label)
	arrTy := next.FieldType.(*value.ArrayTypeVal)
	n, ok := BigIntOf(arrTy.Len)
	require.True(t, ok)
	assert.Equal(t, int64(3), n.Int64())
}

func TestEqualReflexiveSymmetricTransitive(t *testing.T) {
	ctx := freshCtx()
	a := value.Lit{Kind: core.IntLit, Value: big.NewInt(7)}
	b := value.Lit{Kind: core.IntLit, Value: big.NewInt(7)}
	c := value.Lit{Kind: core.IntLit, Value: big.NewInt(7)}

	eq, err := Equal(ctx, a, a)
	require.NoError(t, err)
	assert.True(t, eq, "reflexive")

	eq1, err := Equal(ctx, a, b)
	require.NoError(t, err)
	eq2, err := Equal(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, eq1, eq2, "symmetric")

	eqAB, _ := Equal(ctx, a, b)
	eqBC, _ := Equal(ctx, b, c)
	eqAC, _ := Equal(ctx, a, c)
	assert.True(t, eqAB && eqBC && eqAC, "transitive")
}

func TestEqualOnRecordTypesComparesOpenedTails(t *testing.T) {
	ctx := freshCtx()
	u8 := &core.FormatPrim{Kind: core.FormatUnsigned, Width: core.Width8}

	build := func() value.Value {
		lb := binder.Fresh("len")
		rt := &core.RecordTypeCons{
			Label: "len", Binder: lb, FieldType: u8,
			Rest: &core.RecordTypeCons{
				Label: "data", Binder: binder.Fresh("data"),
				FieldType: &core.ArrayType{Len: &core.BoundVar{Binder: lb}, Elem: u8},
				Rest:      &core.EmptyRecordType{},
			},
		}
		v, err := Eval(ctx, rt)
		require.NoError(t, err)
		return v
	}

	v1 := build()
	v2 := build()
	eq, err := Equal(ctx, v1, v2)
	require.NoError(t, err)
	assert.True(t, eq, "two independently-elaborated but structurally identical record types must be equal")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	ctx := freshCtx()
	ifTerm := &core.If{
		Cond: &core.Lit{Kind: core.BoolLit, Value: false},
		Then: intLit(1),
		Else: intLit(2),
	}

	once, err := Normalize(ctx, ifTerm)
	require.NoError(t, err)
	twice, err := Normalize(ctx, once)
	require.NoError(t, err)

	v1, err := Eval(ctx, once)
	require.NoError(t, err)
	v2, err := Eval(ctx, twice)
	require.NoError(t, err)
	eq, err := Equal(ctx, v1, v2)
	require.NoError(t, err)
	assert.True(t, eq)
}
