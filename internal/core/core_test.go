package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddlc/ddlc/internal/binder"
)

func TestUniverseLitString(t *testing.T) {
	assert.Equal(t, "Type", (&UniverseLit{Level: UType}).String())
	assert.Equal(t, "Format", (&UniverseLit{Level: UFormat}).String())
	assert.Equal(t, "Kind", (&UniverseLit{Level: UKind}).String())
}

func TestFormatPrimStringAndByteSize(t *testing.T) {
	u16le := &FormatPrim{Kind: FormatUnsigned, Width: Width16, End: LittleEndian}
	assert.Equal(t, "U16Le", u16le.String())
	assert.Equal(t, 2, u16le.ByteSize())

	u8 := &FormatPrim{Kind: FormatUnsigned, Width: Width8}
	assert.Equal(t, "U8", u8.String())
	assert.Equal(t, 1, u8.ByteSize())

	f64be := &FormatPrim{Kind: FormatFloat, Width: Width64, End: BigEndian}
	assert.Equal(t, "F64Be", f64be.String())
	assert.Equal(t, 8, f64be.ByteSize())
}

func TestFieldLabelsWalksChainInOrder(t *testing.T) {
	u8 := &FormatPrim{Kind: FormatUnsigned, Width: Width8}
	bx := binder.Fresh("x")
	rt := &RecordTypeCons{
		Label:     "len",
		Binder:    bx,
		FieldType: u8,
		Rest: &RecordTypeCons{
			Label:     "data",
			Binder:    binder.Fresh("data"),
			FieldType: &ArrayType{Len: &BoundVar{Binder: bx}, Elem: u8},
			Rest:      &EmptyRecordType{},
		},
	}

	assert.Equal(t, []string{"len", "data"}, FieldLabels(rt))
}

func TestRecordValStringRendersAllFields(t *testing.T) {
	rv := &RecordValCons{
		Label: "len",
		Value: &Lit{Kind: IntLit, Value: big.NewInt(3)},
		Rest: &RecordValCons{
			Label: "data",
			Value: &ArrayVal{Elements: []Term{
				&Lit{Kind: IntLit, Value: big.NewInt(10)},
			}},
			Rest: &EmptyRecordVal{},
		},
	}

	assert.Equal(t, "{ len = 3, data = [10] }", RecordValString(rv))
}

func TestNeutralStringConcatenatesSpine(t *testing.T) {
	n := &Neutral{
		Head: GlobalHead{Name: "Point"},
		Spine: []Elim{
			ProjElim{Label: "x"},
		},
	}
	assert.Equal(t, "Point.x", n.String())
}
