package basecodec

// Hooks lightweight callbacks for rejected inputs and failed conversions.
// Implementations MUST be cheap and non-blocking; the codec calls them
// synchronously before returning the error.
type Hooks interface {
	// Input longer than the configured guard; nothing was converted.
	SizeRejected(op Op, enc Encoding, n, max int)

	// Decode input held a character outside the alphabet.
	InvalidCharacter(enc Encoding, char rune, pos int)

	// A domain type or value codec failed to produce or accept a byte buffer.
	ConversionFailed(op Op, enc Encoding, err error)

	// A store entry was deleted on read.
	// reason ∈ {"corrupt", "digest_mismatch", "value_decode"}
	StoreSelfHeal(storageKey, reason string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SizeRejected(Op, Encoding, int, int)  {}
func (NopHooks) InvalidCharacter(Encoding, rune, int) {}
func (NopHooks) ConversionFailed(Op, Encoding, error) {}
func (NopHooks) StoreSelfHeal(string, string)         {}
