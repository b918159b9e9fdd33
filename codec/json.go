package codec

import "encoding/json"

// JSON serializes V with encoding/json. Handy for debugging; prefer CBOR or
// Msgpack for identifiers since JSON output is large and radix-encoding cost
// grows quadratically with it.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
