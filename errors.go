package basecodec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter    = errors.New("basecodec: invalid character")
	ErrUnsupportedEncoding = errors.New("basecodec: unsupported encoding")
	ErrSizeConstraint      = errors.New("basecodec: size constraint violation")
	ErrConversion          = errors.New("basecodec: conversion failure")
)

// Kind classifies errors returned by this package.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidCharacter
	KindUnsupportedEncoding
	KindSizeConstraintViolation
	KindConversionFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "invalid_character"
	case KindUnsupportedEncoding:
		return "unsupported_encoding"
	case KindSizeConstraintViolation:
		return "size_constraint_violation"
	case KindConversionFailure:
		return "conversion_failure"
	default:
		return "unknown"
	}
}

// KindOf reports the kind of the outermost basecodec error in err's chain.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// Op names the direction of a failed operation.
type Op string

const (
	OpEncode Op = "encode"
	OpDecode Op = "decode"
)

// InvalidCharacterError reports the first character of a decode input that
// is not in the declared alphabet. Pos is the zero-based character index.
type InvalidCharacterError struct {
	Encoding Encoding
	Char     rune
	Pos      int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("basecodec: invalid %s character %q at position %d", e.Encoding, e.Char, e.Pos)
}
func (e *InvalidCharacterError) Is(target error) bool { return target == ErrInvalidCharacter }
func (e *InvalidCharacterError) Kind() Kind           { return KindInvalidCharacter }

type UnsupportedEncodingError struct {
	Encoding Encoding
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("basecodec: unsupported encoding %s", e.Encoding)
}
func (e *UnsupportedEncodingError) Is(target error) bool { return target == ErrUnsupportedEncoding }
func (e *UnsupportedEncodingError) Kind() Kind           { return KindUnsupportedEncoding }

// SizeError is returned when an input is longer than the configured guard.
// Len and Max are bytes for encode and characters for decode.
type SizeError struct {
	Op       Op
	Encoding Encoding
	Len      int
	Max      int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("basecodec: %s %s input too large: %d > %d", e.Op, e.Encoding, e.Len, e.Max)
}
func (e *SizeError) Is(target error) bool { return target == ErrSizeConstraint }
func (e *SizeError) Kind() Kind           { return KindSizeConstraintViolation }

// ConversionError carries the failure of a domain type's own conversion to or
// from a ByteVec. Err is passed through untouched.
type ConversionError struct {
	Op       Op
	Encoding Encoding
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("basecodec: %s %s conversion failed: %v", e.Op, e.Encoding, e.Err)
}
func (e *ConversionError) Unwrap() error        { return e.Err }
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }
func (e *ConversionError) Kind() Kind           { return KindConversionFailure }
