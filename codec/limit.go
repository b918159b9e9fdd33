package codec

import "fmt"

// LimitCodec wraps another codec to enforce a maximum payload size in both
// directions. Encode fails if Inner produced more than MaxEncode bytes; Decode
// fails without invoking Inner if the input exceeds MaxDecode.
// A limit <= 0 is disabled.
//
// Typical use: keep structured values small enough to stay well inside the
// radix codec's size guard and render to short strings.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner     Codec[V]
	MaxEncode int
	MaxDecode int
}

// PayloadTooLargeError is returned when a payload exceeds a LimitCodec bound.
type PayloadTooLargeError struct {
	Len, Max int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload too large: %d > %d", e.Len, e.Max)
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, &PayloadTooLargeError{Len: len(b), Max: c.MaxEncode}
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, &PayloadTooLargeError{Len: len(b), Max: c.MaxDecode}
	}
	return c.Inner.Decode(b)
}
