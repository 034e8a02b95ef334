package state

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// ID identifies a stroke or path for its whole lifetime, including across
// undo and redo. Caches keyed by ID rely on it never being reused.
type ID uuid.UUID

func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Seed derives a stable 64-bit seed from the identity.
func (id ID) Seed() uint64 {
	h := fnv.New64a()
	h.Write(id[:])
	return h.Sum64()
}
