// Package radix converts byte buffers to and from positional numerals over an
// alphabet.
//
// The buffer is read as a big-endian unsigned integer. Leading zero bytes carry
// no magnitude, so each one is written as a single zero symbol ahead of the
// digits and restored one-for-one on decode:
//
//	[0x00 0x00 0x01] --base36--> "001"
//	"001"            --base36--> [0x00 0x00 0x01]
//
// Conversion is schoolbook division (encode) and multiply-add (decode) on byte
// slices, O(L^2) in the input length. Callers bound L.
package radix

import (
	"fmt"
	"math"

	"github.com/unkn0wn-root/basecodec/internal/alphabet"
)

// InvalidSymbolError reports the first rune of a decode input that is not in
// the alphabet. Pos is a zero-based rune index.
type InvalidSymbolError struct {
	Char rune
	Pos  int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("radix: invalid symbol %q at position %d", e.Char, e.Pos)
}

// Encode renders src in the alphabet's radix. src is not modified.
func Encode(src []byte, a *alphabet.Alphabet) string {
	zeros := leadingZeros(src)
	if zeros == len(src) {
		return repeat(a.Zero(), zeros)
	}

	radix := uint32(a.Radix())
	num := make([]byte, len(src)-zeros)
	copy(num, src[zeros:])

	// least significant first
	digits := make([]byte, 0, EncodedLen(len(num), a.Radix()))
	for len(num) > 0 {
		var rem byte
		num, rem = divmod(num, radix)
		digits = append(digits, a.Symbol(int(rem)))
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = a.Zero()
	}
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return string(out)
}

// Decode parses s as a numeral in the alphabet's radix. Every rune is checked
// before any arithmetic runs; the first foreign rune fails the whole call.
// An empty s decodes to an empty, non-nil slice.
func Decode(s string, a *alphabet.Alphabet) ([]byte, error) {
	digits := make([]byte, 0, len(s))
	pos := 0
	for _, c := range s {
		d, ok := a.Digit(c)
		if !ok {
			return nil, &InvalidSymbolError{Char: c, Pos: pos}
		}
		digits = append(digits, byte(d))
		pos++
	}

	zeros := leadingZeros(digits)
	radix := uint32(a.Radix())

	// little-endian so carries append instead of shifting
	acc := make([]byte, 0, len(digits))
	for _, d := range digits[zeros:] {
		acc = muladd(acc, radix, uint32(d))
	}

	out := make([]byte, zeros+len(acc))
	for i, b := range acc {
		out[len(out)-1-i] = b
	}
	return out, nil
}

// EncodedLen is an upper bound on the length of Encode's output for n input
// bytes in the given radix.
func EncodedLen(n, radix int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n)*8/math.Log2(float64(radix)))) + 1
}

// divmod divides the big-endian number in num by d in place. It returns the
// quotient with leading zero bytes trimmed (empty once the quotient is 0) and
// the remainder. d must be in [2, 256].
func divmod(num []byte, d uint32) ([]byte, byte) {
	var rem uint32
	for i, b := range num {
		acc := rem<<8 | uint32(b)
		num[i] = byte(acc / d)
		rem = acc % d
	}
	return num[leadingZeros(num):], byte(rem)
}

// muladd computes acc*m + add over a little-endian buffer.
func muladd(acc []byte, m, add uint32) []byte {
	carry := add
	for i := range acc {
		v := uint32(acc[i])*m + carry
		acc[i] = byte(v)
		carry = v >> 8
	}
	for carry > 0 {
		acc = append(acc, byte(carry))
		carry >>= 8
	}
	return acc
}

func leadingZeros(b []byte) int {
	n := 0
	for n < len(b) && b[n] == 0 {
		n++
	}
	return n
}

func repeat(c byte, n int) string {
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = c
	}
	return string(out)
}
