package format

import (
	"io"
	"math"
	"math/big"

	"github.com/ddlc/ddlc/internal/bytesource"
	"github.com/ddlc/ddlc/internal/core"
	"github.com/ddlc/ddlc/internal/diag"
	"github.com/ddlc/ddlc/internal/value"
)

// readExact reads n bytes from src, wrapping any I/O error (including a
// partial read at EOF) as FMTIo per spec.md §4.4 ("partial reads fail
// with the I/O error; no rollback is attempted").
func readExact(src bytesource.Source, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, diag.Wrap(diag.New(diag.FMTIo, "format", err.Error(), nil))
	}
	return buf, nil
}

func decodeUint(buf []byte, end core.Endian) *big.Int {
	var u uint64
	if end == core.LittleEndian {
		for i := len(buf) - 1; i >= 0; i-- {
			u = u<<8 | uint64(buf[i])
		}
	} else {
		for _, b := range buf {
			u = u<<8 | uint64(b)
		}
	}
	return new(big.Int).SetUint64(u)
}

func decodeSigned(buf []byte, end core.Endian, width core.IntWidth) *big.Int {
	u := decodeUint(buf, end)
	bits := uint(width)
	signBit := new(big.Int).Lsh(big.NewInt(1), bits-1)
	if u.Cmp(signBit) < 0 {
		return u
	}
	full := new(big.Int).Lsh(big.NewInt(1), bits)
	return new(big.Int).Sub(u, full)
}

func decodeFloat(buf []byte, end core.Endian, width core.IntWidth) value.Lit {
	bits := decodeUint(buf, end)
	if width == core.Width32 {
		return value.Lit{Kind: core.F32Lit, Value: math.Float32frombits(uint32(bits.Uint64()))}
	}
	return value.Lit{Kind: core.F64Lit, Value: math.Float64frombits(bits.Uint64())}
}
