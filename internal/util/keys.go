package util

import "strings"

// StorageKey returns "<prefix>:<ns>:<id>". The id is an encoded string and
// never contains ':' in either alphabet, so keys cannot collide across
// namespaces.
func StorageKey(prefix, ns, id string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(ns) + len(id) + 2)
	b.WriteString(prefix)
	b.WriteByte(':')
	b.WriteString(ns)
	b.WriteByte(':')
	b.WriteString(id)
	return b.String()
}
