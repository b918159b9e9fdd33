package basecodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/basecodec/codec"
)

// accountID is a fixed-width domain id.
type accountID uint32

func (id accountID) ToByteVec() (ByteVec, error) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(id))
	return NewByteVec(b), nil
}

func (id *accountID) FromByteVec(v ByteVec) error {
	if v.Len() != 4 {
		return errors.New("account id: want 4 bytes")
	}
	*id = accountID(binary.BigEndian.Uint32(v.Bytes()))
	return nil
}

var errBroken = errors.New("broken value")

type brokenValue struct{}

func (brokenValue) ToByteVec() (ByteVec, error) { return ByteVec{}, errBroken }

func TestTryEncodeDecode(t *testing.T) {
	for _, enc := range Encodings() {
		es, err := TryEncode(accountID(7), enc)
		if err != nil {
			t.Fatalf("%s: TryEncode: %v", enc, err)
		}
		// 00 00 00 07: three zero symbols then one digit
		want := enc.Alphabet()[:1] + enc.Alphabet()[:1] + enc.Alphabet()[:1] + enc.Alphabet()[7:8]
		if es.String() != want {
			t.Fatalf("%s: got %q want %q", enc, es, want)
		}
		id, err := TryDecode[accountID](es)
		if err != nil || id != 7 {
			t.Fatalf("%s: TryDecode = %d, %v", enc, id, err)
		}
	}
}

func TestTryEncodeConversionFailure(t *testing.T) {
	h := &hookRecorder{}
	c := New(Options{Hooks: h, MaxInputLen: 1})
	_, err := c.TryEncode(brokenValue{}, Base58)
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Op != OpEncode {
		t.Fatalf("expected encode ConversionError, got %v", err)
	}
	if !errors.Is(err, errBroken) || !errors.Is(err, ErrConversion) || KindOf(err) != KindConversionFailure {
		t.Fatalf("cause or classification lost: %v", err)
	}
	if h.convFails != 1 || len(h.sizes) != 0 {
		t.Fatalf("codec must not run after a failed conversion: conv=%d sizes=%v", h.convFails, h.sizes)
	}
}

func TestTryDecodeConversionFailure(t *testing.T) {
	es, _ := Encode(Base36, []byte{1, 2})
	_, err := TryDecode[accountID](es)
	if KindOf(err) != KindConversionFailure {
		t.Fatalf("expected ConversionError, got %v", err)
	}

	// codec errors are not wrapped
	_, err = TryDecode[accountID](NewEncodedString(Base36, "A"))
	if KindOf(err) != KindInvalidCharacter {
		t.Fatalf("expected InvalidCharacterError, got %v", err)
	}
	if errors.Is(err, ErrConversion) {
		t.Fatalf("codec error must not be reported as conversion failure")
	}
}

func TestByteVecFacade(t *testing.T) {
	in := NewByteVec([]byte{0, 0xde, 0xad})
	es, err := TryEncode(in, Base58)
	if err != nil {
		t.Fatalf("TryEncode: %v", err)
	}
	out, err := TryDecodeWith[ByteVec](Default(), es)
	if err != nil || !bytes.Equal(out.Bytes(), in.Bytes()) {
		t.Fatalf("TryDecode: %x %v", out.Bytes(), err)
	}
	viaMethod, _ := in.Encode(Base58)
	if viaMethod != es {
		t.Fatalf("ByteVec.Encode = %q, TryEncode = %q", viaMethod, es)
	}

	cl := in.Clone()
	cl.Bytes()[0] = 9
	if in.Bytes()[0] != 0 {
		t.Fatalf("Clone shares storage")
	}
	if (ByteVec{}).Clone().Bytes() != nil {
		t.Fatalf("Clone of empty ByteVec should stay nil")
	}
}

type profile struct {
	Name  string `json:"name" cbor:"1,keyasint" msgpack:"name"`
	Level int    `json:"level" cbor:"2,keyasint" msgpack:"level"`
}

func TestTypedCodecs(t *testing.T) {
	v := profile{Name: "ada", Level: 3}
	typed := map[string]codec.Codec[profile]{
		"json":    codec.JSON[profile]{},
		"cbor":    codec.MustCBOR[profile](true),
		"msgpack": codec.Msgpack[profile]{},
	}
	for name, vc := range typed {
		for _, enc := range Encodings() {
			tc, err := NewTyped[profile](vc, enc, nil)
			if err != nil {
				t.Fatalf("%s/%s: NewTyped: %v", name, enc, err)
			}
			es, err := tc.Encode(v)
			if err != nil {
				t.Fatalf("%s/%s: Encode: %v", name, enc, err)
			}
			if err := es.Validate(); err != nil || es.Encoding() != enc {
				t.Fatalf("%s/%s: bad output %q: %v", name, enc, es, err)
			}
			got, err := tc.DecodeString(es.String())
			if err != nil || got != v {
				t.Fatalf("%s/%s: DecodeString = %+v, %v", name, enc, got, err)
			}
		}
	}
}

func TestTypedUUIDDecodesOwnTag(t *testing.T) {
	u := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	b58, err := NewTyped[uuid.UUID](codec.UUID{}, Base58, nil)
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	b36, _ := NewTyped[uuid.UUID](codec.UUID{}, Base36, nil)

	es, err := b36.Encode(u)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if es.String()[:4] != "0000" {
		t.Fatalf("leading zero bytes lost: %q", es)
	}
	// a Base58 Typed still decodes a Base36-tagged string by its tag
	got, err := b58.Decode(es)
	if err != nil || got != u {
		t.Fatalf("Decode = %s, %v", got, err)
	}

	// decoding a valid string into the wrong number of bytes is a conversion failure
	short, _ := Encode(Base58, []byte{1, 2, 3})
	if _, err := b58.Decode(short); KindOf(err) != KindConversionFailure {
		t.Fatalf("expected conversion failure, got %v", err)
	}
}

func TestNewTypedValidation(t *testing.T) {
	if _, err := NewTyped[string](nil, Base58, nil); err == nil {
		t.Fatalf("expected error for nil value codec")
	}
	if _, err := NewTyped[string](codec.String{}, Encoding(0), nil); KindOf(err) != KindUnsupportedEncoding {
		t.Fatalf("expected unsupported encoding, got %v", err)
	}
	bc := New(Options{MaxInputLen: 2})
	tc, err := NewTyped[string](codec.String{}, Base36, bc)
	if err != nil {
		t.Fatalf("NewTyped: %v", err)
	}
	if _, err := tc.Encode("abc"); KindOf(err) != KindSizeConstraintViolation {
		t.Fatalf("custom Codec guard not applied: %v", err)
	}
}
