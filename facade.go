package basecodec

import (
	"errors"

	"github.com/unkn0wn-root/basecodec/codec"
)

// Encodable is implemented by domain types that can turn themselves into a raw
// byte buffer. Implementing it is all it takes to use TryEncode.
type Encodable interface {
	ToByteVec() (ByteVec, error)
}

// Decodable is the pointer-receiver counterpart of Encodable, used as a type
// constraint so TryDecode can construct a T:
//
//	id, err := basecodec.TryDecode[UserID](es)
type Decodable[T any] interface {
	*T
	FromByteVec(ByteVec) error
}

// TryEncode converts v to bytes and renders them in enc. A failed conversion
// is returned as ConversionError and the codec never runs.
func (c *Codec) TryEncode(v Encodable, enc Encoding) (EncodedString, error) {
	bv, err := v.ToByteVec()
	if err != nil {
		return EncodedString{}, c.conversionFailed(OpEncode, enc, err)
	}
	return c.Encode(enc, bv.Bytes())
}

// TryEncode uses the default Codec.
func TryEncode(v Encodable, enc Encoding) (EncodedString, error) {
	return defaultCodec.TryEncode(v, enc)
}

// TryDecode decodes es with the default Codec and rebuilds a T from the bytes.
func TryDecode[T any, PT Decodable[T]](es EncodedString) (T, error) {
	return TryDecodeWith[T, PT](defaultCodec, es)
}

// TryDecodeWith is TryDecode with an explicit Codec. Codec errors are returned
// as-is; a failed reconstruction is returned as ConversionError.
func TryDecodeWith[T any, PT Decodable[T]](c *Codec, es EncodedString) (T, error) {
	var v T
	b, err := c.Decode(es)
	if err != nil {
		return v, err
	}
	if err := PT(&v).FromByteVec(NewByteVec(b)); err != nil {
		var zero T
		return zero, c.conversionFailed(OpDecode, es.enc, err)
	}
	return v, nil
}

// Typed binds a value codec and an encoding, so any V the codec can serialize
// rides on the radix conversion without implementing Encodable itself.
type Typed[V any] struct {
	vc  codec.Codec[V]
	enc Encoding
	c   *Codec
}

// NewTyped builds a Typed. bc may be nil to use the default Codec.
func NewTyped[V any](vc codec.Codec[V], enc Encoding, bc *Codec) (*Typed[V], error) {
	if vc == nil {
		return nil, errors.New("basecodec: value codec is required")
	}
	if _, err := enc.alphabet(); err != nil {
		return nil, err
	}
	if bc == nil {
		bc = defaultCodec
	}
	return &Typed[V]{vc: vc, enc: enc, c: bc}, nil
}

func (t *Typed[V]) Encoding() Encoding { return t.enc }

func (t *Typed[V]) Encode(v V) (EncodedString, error) {
	b, err := t.vc.Encode(v)
	if err != nil {
		return EncodedString{}, t.c.conversionFailed(OpEncode, t.enc, err)
	}
	return t.c.Encode(t.enc, b)
}

// Decode parses es in its own tagged encoding, which may differ from the one
// t encodes with.
func (t *Typed[V]) Decode(es EncodedString) (V, error) {
	var zero V
	b, err := t.c.Decode(es)
	if err != nil {
		return zero, err
	}
	v, err := t.vc.Decode(b)
	if err != nil {
		return zero, t.c.conversionFailed(OpDecode, es.enc, err)
	}
	return v, nil
}

// DecodeString parses s in t's encoding.
func (t *Typed[V]) DecodeString(s string) (V, error) {
	return t.Decode(NewEncodedString(t.enc, s))
}
