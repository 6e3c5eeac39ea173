package sample

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/viant/sqlite-idw/geom"
)

// EncodeCoord encodes a point's location into a BLOB suitable for the
// idw_l2 SQL function: a little-endian pair of IEEE 754 float32 values. The
// value, if any, is not encoded.
func EncodeCoord(p geom.Point) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(p.Y)))
	return b
}

// DecodeCoord decodes a BLOB produced by EncodeCoord.
func DecodeCoord(b []byte) (x, y float32, err error) {
	if len(b) != 8 {
		return 0, 0, fmt.Errorf("sample: invalid coordinate blob length %d (want 8)", len(b))
	}
	x = math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))
	y = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	return x, y, nil
}
