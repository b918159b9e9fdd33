package basecodec

// ByteVec is an owned raw byte buffer: the meeting point between domain
// values and the codec.
//
// NewByteVec takes ownership of b without copying. The caller must not mutate
// b afterwards; use Clone for an independent copy. Encoding only reads the
// buffer, decoding always returns a freshly allocated one.
type ByteVec struct {
	b []byte
}

func NewByteVec(b []byte) ByteVec { return ByteVec{b: b} }

func (v ByteVec) Bytes() []byte { return v.b }
func (v ByteVec) Len() int      { return len(v.b) }

func (v ByteVec) Clone() ByteVec {
	if v.b == nil {
		return ByteVec{}
	}
	return ByteVec{b: append([]byte{}, v.b...)}
}

// Encode renders the buffer with the default Codec.
func (v ByteVec) Encode(enc Encoding) (EncodedString, error) {
	return defaultCodec.Encode(enc, v.b)
}

// ByteVec is trivially Encodable and Decodable.
func (v ByteVec) ToByteVec() (ByteVec, error) { return v, nil }

func (v *ByteVec) FromByteVec(b ByteVec) error {
	*v = b
	return nil
}
