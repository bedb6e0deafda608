package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlc/ddlc/internal/diag"
)

func parseSrc(t *testing.T, src string) (*Module, *diag.Sink) {
	t.Helper()
	sink := diag.NewSink()
	p := NewParser(Normalize([]byte(src)), "test.ddl", sink)
	return p.ParseModule(), sink
}

func TestParseAliasWithAnnotation(t *testing.T) {
	mod, sink := parseSrc(t, `alias Answer : Int = 42;`)
	require.Empty(t, sink.Reports())
	require.Len(t, mod.Items, 1)

	item := mod.Items[0].(*AliasItem)
	assert.Equal(t, "Answer", item.Name)
	require.NotNil(t, item.TypeAnn)
	assert.Equal(t, "Int", item.TypeAnn.(*Name).Ident)
	lit, ok := item.Body.(*IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Value.Int64())
}

func TestParseStructWithArrayField(t *testing.T) {
	src := `
struct Header {
	len : U8,
	data : Array len U8,
}`
	mod, sink := parseSrc(t, src)
	require.Empty(t, sink.Reports())
	require.Len(t, mod.Items, 1)

	item := mod.Items[0].(*StructItem)
	assert.Equal(t, "Header", item.Name)
	require.Len(t, item.Fields, 2)
	assert.Equal(t, "len", item.Fields[0].Label)
	assert.Equal(t, "data", item.Fields[1].Label)

	arr, ok := item.Fields[1].Type.(*ArrayApp)
	require.True(t, ok)
	assert.Equal(t, "len", arr.Len.(*Name).Ident)
	assert.Equal(t, "U8", arr.Elem.(*Name).Ident)
}

func TestParseIfThenElse(t *testing.T) {
	mod, sink := parseSrc(t, `alias X : Int = if true then 1 else 2;`)
	require.Empty(t, sink.Reports())
	body := mod.Items[0].(*AliasItem).Body
	ifT, ok := body.(*If)
	require.True(t, ok)
	assert.Equal(t, "true", ifT.Cond.(*Name).Ident)
}

func TestParseRefineWithComparison(t *testing.T) {
	mod, sink := parseSrc(t, `alias Small : Type = { x : U8 | x < 10 };`)
	require.Empty(t, sink.Reports())
	body := mod.Items[0].(*AliasItem).Body
	ref, ok := body.(*Refine)
	require.True(t, ok)
	assert.Equal(t, "x", ref.BinderName)
	assert.Equal(t, "U8", ref.Base.(*Name).Ident)
	cmp, ok := ref.Pred.(*Cmp)
	require.True(t, ok)
	assert.Equal(t, CmpLt, cmp.Op)
}

func TestParseDocCommentAttachesToNextItem(t *testing.T) {
	src := `
/// The answer to everything.
alias Answer : Int = 42;`
	mod, sink := parseSrc(t, src)
	require.Empty(t, sink.Reports())
	assert.Equal(t, "The answer to everything.", mod.Items[0].Doc())
}

func TestParseSyntaxErrorRecordsDiagnosticAndSkipsItem(t *testing.T) {
	src := `
alias Bad = ;
alias Good : Int = 1;`
	mod, sink := parseSrc(t, src)
	require.NotEmpty(t, sink.Reports())
	require.Len(t, mod.Items, 1)
	assert.Equal(t, "Good", mod.Items[0].ItemName())
}
