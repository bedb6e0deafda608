package module_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlc/ddlc/internal/bytesource"
	"github.com/ddlc/ddlc/internal/corenv"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/eval"
	"github.com/ddlc/ddlc/internal/format"
	"github.com/ddlc/ddlc/internal/module"
	"github.com/ddlc/ddlc/internal/surface"
)

func parseModule(t *testing.T, src string) []surface.Item {
	t.Helper()
	sink := diag.NewSink()
	p := surface.NewParser(surface.Normalize([]byte(src)), "t.ddl", sink)
	mod := p.ParseModule()
	require.Empty(t, sink.Reports())
	return mod.Items
}

// Testable property #11: documentation preservation.
func TestDocCommentPreservedThroughCompile(t *testing.T) {
	items := parseModule(t, "/// the wire header\nstruct Header { len : U8 }")
	prog, reports := module.Compile(items)
	assert.Empty(t, reports)
	require.Len(t, prog.Items, 1)
	assert.Equal(t, "the wire header", prog.Items[0].Doc)
}

func TestLaterItemCanReferenceEarlierStructByName(t *testing.T) {
	items := parseModule(t, `struct Header { len : U8 }
alias Packet : Format = Header;`)
	prog, reports := module.Compile(items)
	require.Empty(t, reports)
	require.Len(t, prog.Items, 2)
	assert.Equal(t, corenv.GlobalStruct, prog.Items[0].Kind)
	assert.Equal(t, corenv.GlobalAlias, prog.Items[1].Kind)

	ctx := eval.Ctx{Globals: prog.Globals}
	packetTy, err := eval.Eval(ctx, prog.Items[1].Body)
	require.NoError(t, err)

	result, err := format.Interpret(ctx, packetTy, bytesource.Memory([]byte{0x07}))
	require.NoError(t, err)
	assert.Contains(t, result.String(), "len")
}

func TestForwardReferenceIsUnboundName(t *testing.T) {
	items := parseModule(t, `alias Packet : Format = Header;
struct Header { len : U8 }`)
	_, reports := module.Compile(items)
	require.NotEmpty(t, reports)
	assert.Equal(t, diag.SCPUnboundName, reports[0].Code)
}
