package budgeters

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// shortIDLen is the number of leading hex characters shown to the user and
// used for lookup.
const shortIDLen = 6

// ID is an opaque unique entity identifier: a 128-bit random value rendered
// as 32 hexadecimal characters. Identifiers are never persisted; every
// decoded entity gets a fresh one.
type ID string

// NewID returns a new random identifier.
func NewID() ID {
	u := uuid.New()
	return ID(hex.EncodeToString(u[:]))
}

// Short returns the fixed-length display prefix of the identifier.
func (id ID) Short() string {
	if len(id) < shortIDLen {
		return string(id)
	}
	return string(id[:shortIDLen])
}
