package codec

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID lays a uuid.UUID out as its 16 raw bytes, which render to at most
// 22 Base58 or 25 Base36 characters instead of the 36-character dashed form.
type UUID struct{}

var _ Codec[uuid.UUID] = UUID{}

func (UUID) Encode(u uuid.UUID) ([]byte, error) {
	b := make([]byte, len(u))
	copy(b, u[:])
	return b, nil
}

func (UUID) Decode(b []byte) (uuid.UUID, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("codec: uuid: %w", err)
	}
	return u, nil
}
