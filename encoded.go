package basecodec

// EncodedString is a display string tagged with the Encoding that produced it.
//
// The tag is advisory. NewEncodedString does no checking, and Decode always
// re-validates every character against the tagged alphabet.
type EncodedString struct {
	enc Encoding
	s   string
}

func NewEncodedString(enc Encoding, s string) EncodedString {
	return EncodedString{enc: enc, s: s}
}

// ParseEncodedString is the checked constructor: it fails with
// UnsupportedEncodingError or InvalidCharacterError.
func ParseEncodedString(enc Encoding, s string) (EncodedString, error) {
	es := EncodedString{enc: enc, s: s}
	if err := es.Validate(); err != nil {
		return EncodedString{}, err
	}
	return es, nil
}

func (e EncodedString) Encoding() Encoding { return e.enc }
func (e EncodedString) String() string     { return e.s }
func (e EncodedString) Len() int           { return len(e.s) }

// Validate checks every character against the tagged alphabet without
// decoding.
func (e EncodedString) Validate() error {
	a, err := e.enc.alphabet()
	if err != nil {
		return err
	}
	pos := 0
	for _, c := range e.s {
		if !a.Contains(c) {
			return &InvalidCharacterError{Encoding: e.enc, Char: c, Pos: pos}
		}
		pos++
	}
	return nil
}

// Decode parses the string with the default Codec.
func (e EncodedString) Decode() ([]byte, error) {
	return defaultCodec.Decode(e)
}
