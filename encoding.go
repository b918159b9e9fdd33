package basecodec

import (
	"fmt"
	"strings"

	"github.com/unkn0wn-root/basecodec/internal/alphabet"
)

// Encoding selects an alphabet. The zero value is not a valid encoding.
type Encoding uint8

const (
	Base36 Encoding = iota + 1
	Base58
)

// Encodings lists every supported encoding.
func Encodings() []Encoding { return []Encoding{Base36, Base58} }

func (e Encoding) String() string {
	switch e {
	case Base36:
		return "base36"
	case Base58:
		return "base58"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

func (e Encoding) Valid() bool {
	_, err := e.alphabet()
	return err == nil
}

// Alphabet returns the ordered symbol set, or "" for an unsupported encoding.
func (e Encoding) Alphabet() string {
	a, err := e.alphabet()
	if err != nil {
		return ""
	}
	return a.String()
}

func (e Encoding) alphabet() (*alphabet.Alphabet, error) {
	switch e {
	case Base36:
		return alphabet.Base36, nil
	case Base58:
		return alphabet.Base58, nil
	default:
		return nil, &UnsupportedEncodingError{Encoding: e}
	}
}

// ParseEncoding accepts "base36", "b36", "36" and the base58 equivalents,
// case-insensitively.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base36", "b36", "36":
		return Base36, nil
	case "base58", "b58", "58":
		return Base58, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}

func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, &UnsupportedEncodingError{Encoding: e}
	}
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(b []byte) error {
	v, err := ParseEncoding(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
