package pool

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// PositionID is the stable identity of one liquidity position: the caller-level
// controller plus a salt scoped to one position under that controller. It is a
// structured composite key; two positions with different controllers or salts
// can never collide, and the same (controller, salt) pair always resolves to
// the same position for its whole lifetime.
type PositionID struct {
	Controller uuid.UUID
	Salt       [32]byte
}

func NewPositionID(controller uuid.UUID, salt [32]byte) PositionID {
	return PositionID{Controller: controller, Salt: salt}
}

// ParseSalt decodes a hex-encoded 32-byte salt
func ParseSalt(s string) ([32]byte, error) {
	var salt [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return salt, fmt.Errorf("parse salt: %w", err)
	}
	if len(raw) != 32 {
		return salt, fmt.Errorf("parse salt: want 32 bytes, got %d", len(raw))
	}
	copy(salt[:], raw)
	return salt, nil
}

// String returns the representation used for storage and logging
func (p PositionID) String() string {
	return fmt.Sprintf("%s:%s", p.Controller.String(), hex.EncodeToString(p.Salt[:]))
}
