// Package alphabet holds the fixed symbol tables for the supported radixes
// and their inverse lookups.
package alphabet

import (
	"errors"
	"fmt"
)

const (
	base36Symbols = "0123456789abcdefghijklmnopqrstuvwxyz"
	base58Symbols = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var (
	// Base36 is digits followed by lowercase letters. Uppercase is not folded.
	Base36 = mustNew(base36Symbols)
	// Base58 drops 0, O, I and l from the alphanumerics.
	Base58 = mustNew(base58Symbols)
)

var ErrInvalidAlphabet = errors.New("alphabet: invalid symbol set")

// Alphabet is an immutable ordered symbol set. The symbol at ordinal 0 is the
// zero symbol used for leading-zero padding.
type Alphabet struct {
	symbols string
	// digit value + 1 per byte; 0 means not a member
	index [128]uint8
}

// New builds an alphabet from an ordered set of unique ASCII symbols.
func New(symbols string) (*Alphabet, error) {
	if n := len(symbols); n < 2 || n > 127 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidAlphabet, n)
	}
	a := &Alphabet{symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 0x80 || c <= ' ' {
			return nil, fmt.Errorf("%w: symbol %q at %d is not printable ASCII", ErrInvalidAlphabet, c, i)
		}
		if a.index[c] != 0 {
			return nil, fmt.Errorf("%w: duplicate symbol %q at %d", ErrInvalidAlphabet, c, i)
		}
		a.index[c] = uint8(i + 1)
	}
	return a, nil
}

func mustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) Radix() int     { return len(a.symbols) }
func (a *Alphabet) Zero() byte     { return a.symbols[0] }
func (a *Alphabet) String() string { return a.symbols }

// Symbol returns the symbol for digit d. d must be in [0, Radix()).
func (a *Alphabet) Symbol(d int) byte { return a.symbols[d] }

// Digit returns the digit value of c, or false if c is not a member.
func (a *Alphabet) Digit(c rune) (int, bool) {
	if c < 0 || c >= rune(len(a.index)) {
		return 0, false
	}
	v := a.index[c]
	if v == 0 {
		return 0, false
	}
	return int(v) - 1, true
}

func (a *Alphabet) Contains(c rune) bool {
	_, ok := a.Digit(c)
	return ok
}
