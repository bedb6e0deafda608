package format_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlc/ddlc/internal/bytesource"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/elab"
	"github.com/ddlc/ddlc/internal/eval"
	"github.com/ddlc/ddlc/internal/format"
	"github.com/ddlc/ddlc/internal/surface"
	"github.com/ddlc/ddlc/internal/value"
)

func elaborateStruct(t *testing.T, src string) core.RecordType {
	t.Helper()
	sink := diag.NewSink()
	p := surface.NewParser(surface.Normalize([]byte(src)), "t.ddl", sink)
	mod := p.ParseModule()
	require.Empty(t, sink.Reports())

	ctx := elab.NewCtx(sink)
	item := mod.Items[0].(*surface.StructItem)
	rt, err := elab.ElaborateStruct(ctx, item)
	require.NoError(t, err)
	require.Empty(t, sink.Reports())
	return rt
}

func evalType(t *testing.T, ctx eval.Ctx, ty core.Term) value.Value {
	t.Helper()
	v, err := eval.Eval(ctx, ty)
	require.NoError(t, err)
	return v
}

// Testable property #5: dependent-size roundtrip.
func TestDependentSizeRoundtrip(t *testing.T) {
	rt := elaborateStruct(t, `struct Header { len : U8, data : Array len U8 }`)
	ctx := eval.Ctx{}
	ty := evalType(t, ctx, rt)

	src := bytesource.Memory([]byte{0x03, 0x0A, 0x0B, 0x0C, 0xFF})
	result, err := format.Interpret(ctx, ty, src)
	require.NoError(t, err)

	rec, ok := result.(*value.RecordVal)
	require.True(t, ok)
	assert.Equal(t, "len", rec.Label)
	lenLit := rec.Value.(value.Lit)
	assert.Equal(t, "3", lenLit.Value.(*big.Int).String())

	dataField, ok := rec.Rest.(*value.RecordVal)
	require.True(t, ok)
	assert.Equal(t, "data", dataField.Label)
	arr, ok := dataField.Value.(*value.ArrayVal)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
	assert.Equal(t, "10", arr.Elements[0].String())
	assert.Equal(t, "11", arr.Elements[1].String())
	assert.Equal(t, "12", arr.Elements[2].String())

	// The fifth byte (0xFF) must not be consumed: the source should still
	// report a single remaining byte when read.
	buf := make([]byte, 1)
	n, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, byte(0xFF), buf[0])
}

// Testable property #6: endian correctness.
func TestEndianCorrectness(t *testing.T) {
	le := value.FormatConst{Kind: core.FormatUnsigned, Width: core.Width16, End: core.LittleEndian}
	be := value.FormatConst{Kind: core.FormatUnsigned, Width: core.Width16, End: core.BigEndian}
	ctx := eval.Ctx{}

	v, err := format.Interpret(ctx, le, bytesource.Memory([]byte{0x01, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	v, err = format.Interpret(ctx, be, bytesource.Memory([]byte{0x01, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, "256", v.String())
}

// Testable property #4 (determinism half): parsing the same bytes twice
// yields the same value.
func TestParseDeterminism(t *testing.T) {
	ty := value.FormatConst{Kind: core.FormatSigned, Width: core.Width32, End: core.LittleEndian}
	ctx := eval.Ctx{}
	data := []byte{0x2A, 0x00, 0x00, 0x00, 0x99}

	v1, err := format.Interpret(ctx, ty, bytesource.Memory(data))
	require.NoError(t, err)
	v2, err := format.Interpret(ctx, ty, bytesource.Memory(data))
	require.NoError(t, err)
	assert.Equal(t, v1.String(), v2.String())
	assert.Equal(t, "42", v1.String())
}

func TestArrayNegativeLengthFailsBadArrayLength(t *testing.T) {
	ctx := eval.Ctx{}
	at := &value.ArrayTypeVal{
		Len:  value.Lit{Kind: core.IntLit, Value: big.NewInt(-1)},
		Elem: value.FormatConst{Kind: core.FormatUnsigned, Width: core.Width8},
	}
	_, err := format.Interpret(ctx, at, bytesource.Memory(nil))
	require.Error(t, err)
	report, ok := diag.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, diag.FMTBadArrayLength, report.Code)
}

func TestInvalidFormatForHostPrim(t *testing.T) {
	ctx := eval.Ctx{}
	_, err := format.Interpret(ctx, value.HostPrim{Kind: core.HostInt}, bytesource.Memory(nil))
	require.Error(t, err)
	report, ok := diag.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, diag.FMTInvalidFormat, report.Code)
}

func TestPartialReadFailsWithIoError(t *testing.T) {
	ctx := eval.Ctx{}
	ty := value.FormatConst{Kind: core.FormatUnsigned, Width: core.Width32, End: core.LittleEndian}
	_, err := format.Interpret(ctx, ty, bytesource.Memory([]byte{0x01, 0x02}))
	require.Error(t, err)
	report, ok := diag.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, diag.FMTIo, report.Code)
}
