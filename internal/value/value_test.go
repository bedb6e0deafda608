package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddlc/ddlc/internal/core"
)

func TestFormatConstStringMatchesCorePrim(t *testing.T) {
	fc := FormatConst{Kind: core.FormatUnsigned, Width: core.Width16, End: core.LittleEndian}
	assert.Equal(t, "U16Le", fc.String())
	assert.Equal(t, 2, fc.ByteSize())
}

func TestRecordValStringFlattensChain(t *testing.T) {
	rv := &RecordVal{
		Label: "len",
		Value: Lit{Kind: core.IntLit, Value: big.NewInt(3)},
		Rest: &RecordVal{
			Label: "data",
			Value: &ArrayVal{Elements: []Value{Lit{Kind: core.IntLit, Value: big.NewInt(10)}}},
			Rest:  EmptyRecordVal{},
		},
	}

	assert.Equal(t, "{ len = 3, data = [10] }", rv.String())
}

func TestFieldsFlattensInOrder(t *testing.T) {
	rv := &RecordVal{
		Label: "a",
		Value: Lit{Kind: core.IntLit, Value: big.NewInt(1)},
		Rest: &RecordVal{
			Label: "b",
			Value: Lit{Kind: core.IntLit, Value: big.NewInt(2)},
			Rest:  EmptyRecordVal{},
		},
	}

	fields := Fields(rv)
	assert.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Label)
	assert.Equal(t, "b", fields[1].Label)
}

func TestNeutralStringConcatenatesSpine(t *testing.T) {
	n := &Neutral{
		Head:  GlobalHead{Name: "Header"},
		Spine: []Elim{ProjElim{Label: "magic"}},
	}
	assert.Equal(t, "Header.magic", n.String())
}

func TestArrayValString(t *testing.T) {
	a := &ArrayVal{Elements: []Value{
		Lit{Kind: core.IntLit, Value: big.NewInt(10)},
		Lit{Kind: core.IntLit, Value: big.NewInt(11)},
	}}
	assert.Equal(t, "[10, 11]", a.String())
}
