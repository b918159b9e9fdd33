package codec

import (
	"encoding/binary"
	"fmt"
)

// Uint64 lays a number out big-endian with leading zero bytes dropped, so
// small ids render to short strings (0 renders to "").
type Uint64 struct{}

var _ Codec[uint64] = Uint64{}

func (Uint64) Encode(v uint64) ([]byte, error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return append([]byte(nil), buf[i:]...), nil
}

// Decode rejects buffers longer than 8 bytes and non-minimal ones (leading
// zero byte), so every number has exactly one encoding.
func (Uint64) Decode(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("codec: uint64: %d bytes", len(b))
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, fmt.Errorf("codec: uint64: non-minimal encoding")
	}
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:]), nil
}
