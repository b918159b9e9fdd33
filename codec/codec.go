// Package codec turns domain values into the raw byte buffers that basecodec
// renders, and back.
//
// A Codec[V] is the conversion boundary: the radix conversion never looks past
// the bytes it produces. Pick the one matching how V should be laid out:
//
//	Bytes, String      identity and UTF-8
//	Uint64, UUID       fixed-shape identifiers
//	JSON, CBOR,        structured values
//	Msgpack, Protobuf
//	LimitCodec         size guard around any of the above
package codec

// Codec encodes/decodes values V to []byte.
// Decode must accept every buffer Encode produces.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
