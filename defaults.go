package basecodec

// DefaultMaxInputLen bounds Encode input when Options.MaxInputLen is 0.
// Identifiers and digests are far below it.
const DefaultMaxInputLen = 16 << 10

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
