package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	kindEntry byte = 1

	hdrLen = 4 + 1 + 1 + 1 + 1

	// MaxDigest is the largest digest an entry can carry.
	MaxDigest = 0xFF
)

var (
	ErrCorrupt = errors.New("basecodec: corrupt store entry")
	ErrDigest  = errors.New("basecodec: invalid digest length")
	magic4     = [...]byte{'B', 'C', 'D', 'C'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry is one stored value with the digest it is addressed by.
type Entry struct {
	Encoding byte // basecodec.Encoding of the id the entry was stored under
	Digest   []byte
	Payload  []byte
}

// Entry:
//
//	magic(4) | ver(1) | kind(1=entry) | enc(1) | dlen(u8) | digest(dlen) | vlen(u32 be) | payload(vlen)
func EncodeEntry(e Entry) ([]byte, error) {
	if l := len(e.Digest); l == 0 || l > MaxDigest {
		return nil, ErrDigest
	}

	var buf bytes.Buffer
	buf.Grow(hdrLen + len(e.Digest) + 4 + len(e.Payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindEntry)
	buf.WriteByte(e.Encoding)
	buf.WriteByte(byte(len(e.Digest)))
	buf.Write(e.Digest)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Payload)))
	buf.Write(u4[:])

	buf.Write(e.Payload)
	return buf.Bytes(), nil
}

// DecodeEntry parses b strictly: trailing bytes are corruption. Digest and
// Payload alias b.
func DecodeEntry(b []byte) (Entry, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindEntry {
		return Entry{}, ErrCorrupt
	}
	enc := b[6]
	dlen := int(b[7])
	off := hdrLen

	// digest
	if dlen == 0 || dlen > len(b)-off {
		return Entry{}, ErrCorrupt
	}
	digest := b[off : off+dlen]
	off += dlen

	// vlen
	if off+4 > len(b) {
		return Entry{}, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // overflow-safe, no trailing bytes
		return Entry{}, ErrCorrupt
	}

	return Entry{Encoding: enc, Digest: digest, Payload: b[off : off+vlen]}, nil
}
