// Package basecodec renders byte buffers as Base36 or Base58 display strings and
// parses them back, exactly.
//
// The buffer is treated as a big-endian unsigned integer and re-expressed in the
// target radix. Leading zero bytes have no magnitude, so each one is written as
// the alphabet's zero symbol ('0' for Base36, '1' for Base58) ahead of the
// digits, and every leading zero symbol decodes back to one zero byte:
//
//	Encode(Base36, []byte{0, 0, 1}) // "001"
//	Encode(Base58, []byte{})        // ""
//
// Components:
//   - Encoding: closed set of supported alphabets (Base36, Base58).
//   - Codec: size-guarded encode/decode with optional Logger and Hooks.
//   - Encodable / Decodable: opt-in contracts for domain types that can turn
//     themselves into and out of a ByteVec.
//   - Typed[V]: binds a codec.Codec[V] (JSON, CBOR, msgpack, protobuf, UUID...)
//     to an Encoding.
//
// Conversion is quadratic in input length. Codec rejects inputs longer than
// Options.MaxInputLen with a SizeError before doing any arithmetic.
//
// Decoding is strict: every character must belong to the declared alphabet.
// Base36 is lowercase only; "ABC" is rejected, not folded.
package basecodec
