package basecodec

import (
	"errors"

	"github.com/unkn0wn-root/basecodec/internal/radix"
)

// Options tune a Codec. The zero value is usable.
type Options struct {
	// MaxInputLen is the largest byte buffer Encode accepts.
	// 0 => DefaultMaxInputLen; negative => unlimited.
	MaxInputLen int
	// MaxEncodedLen is the longest string (in bytes) Decode accepts.
	// 0 => the longest output MaxInputLen bytes can produce in the
	// requested encoding; negative => unlimited.
	MaxEncodedLen int

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// Codec is the size-guarded entry point to the radix conversion. It holds no
// mutable state and is safe for concurrent use.
type Codec struct {
	maxInput   int
	maxEncoded int
	log        Logger
	hooks      Hooks
}

var defaultCodec = New(Options{})

// Default returns the Codec used by the package-level functions.
func Default() *Codec { return defaultCodec }

func New(opts Options) *Codec {
	return &Codec{
		maxInput:   coalesce(opts.MaxInputLen, DefaultMaxInputLen),
		maxEncoded: opts.MaxEncodedLen,
		log:        coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:      coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

// MaxInputLen reports the Encode guard; negative means unlimited.
func (c *Codec) MaxInputLen() int { return c.maxInput }

// MaxEncodedLen reports the Decode guard for enc; negative means unlimited.
func (c *Codec) MaxEncodedLen(enc Encoding) int {
	if c.maxEncoded != 0 {
		return c.maxEncoded
	}
	if c.maxInput < 0 {
		return -1
	}
	a, err := enc.alphabet()
	if err != nil {
		return 0
	}
	return radix.EncodedLen(c.maxInput, a.Radix())
}

// Encode renders b in enc. b is only read. Inputs over the size guard fail
// with SizeError before any conversion work.
func (c *Codec) Encode(enc Encoding, b []byte) (EncodedString, error) {
	a, err := enc.alphabet()
	if err != nil {
		c.log.Debug("encode rejected (unsupported encoding)", Fields{"encoding": enc.String()})
		return EncodedString{}, err
	}
	if c.maxInput >= 0 && len(b) > c.maxInput {
		return EncodedString{}, c.sizeRejected(OpEncode, enc, len(b), c.maxInput)
	}
	return EncodedString{enc: enc, s: radix.Encode(b, a)}, nil
}

// Decode parses es in its tagged encoding. The tag is not trusted: every
// character is validated and the first foreign one fails the call with
// InvalidCharacterError. No partial buffer is ever returned.
func (c *Codec) Decode(es EncodedString) ([]byte, error) {
	return c.DecodeString(es.enc, es.s)
}

func (c *Codec) DecodeString(enc Encoding, s string) ([]byte, error) {
	a, err := enc.alphabet()
	if err != nil {
		c.log.Debug("decode rejected (unsupported encoding)", Fields{"encoding": enc.String()})
		return nil, err
	}
	if limit := c.MaxEncodedLen(enc); limit >= 0 && len(s) > limit {
		return nil, c.sizeRejected(OpDecode, enc, len(s), limit)
	}
	b, err := radix.Decode(s, a)
	if err != nil {
		var ise *radix.InvalidSymbolError
		if errors.As(err, &ise) {
			c.hooks.InvalidCharacter(enc, ise.Char, ise.Pos)
			c.log.Debug("decode rejected (invalid character)", Fields{"encoding": enc.String(), "char": string(ise.Char), "pos": ise.Pos})
			return nil, &InvalidCharacterError{Encoding: enc, Char: ise.Char, Pos: ise.Pos}
		}
		return nil, err
	}
	return b, nil
}

func (c *Codec) sizeRejected(op Op, enc Encoding, n, limit int) error {
	c.hooks.SizeRejected(op, enc, n, limit)
	c.log.Debug(string(op)+" rejected (size)", Fields{"encoding": enc.String(), "len": n, "max": limit})
	return &SizeError{Op: op, Encoding: enc, Len: n, Max: limit}
}

func (c *Codec) conversionFailed(op Op, enc Encoding, err error) error {
	c.hooks.ConversionFailed(op, enc, err)
	c.log.Debug(string(op)+" conversion failed", Fields{"encoding": enc.String(), "err": err})
	return &ConversionError{Op: op, Encoding: enc, Err: err}
}

// Encode renders b in enc with the default Codec.
func Encode(enc Encoding, b []byte) (EncodedString, error) { return defaultCodec.Encode(enc, b) }

// Decode parses es with the default Codec.
func Decode(es EncodedString) ([]byte, error) { return defaultCodec.Decode(es) }

// DecodeString parses s as enc with the default Codec.
func DecodeString(enc Encoding, s string) ([]byte, error) { return defaultCodec.DecodeString(enc, s) }
