package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DirectChannel stores its participants in canonical order (low < high by
// uuid string comparison), so an unordered pair maps to exactly one row no
// matter which side opens it first.
type DirectChannel struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ParticipantLow  uuid.UUID `bun:",notnull,type:uuid,unique:idx_direct_pair"`
	ParticipantHigh uuid.UUID `bun:",notnull,type:uuid,unique:idx_direct_pair"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Includes reports whether userID is one of the two participants.
func (c *DirectChannel) Includes(userID uuid.UUID) bool {
	return c.ParticipantLow == userID || c.ParticipantHigh == userID
}

// Other returns the participant that is not userID.
func (c *DirectChannel) Other(userID uuid.UUID) uuid.UUID {
	if c.ParticipantLow == userID {
		return c.ParticipantHigh
	}
	return c.ParticipantLow
}

// CanonicalPair orders two user ids into the (low, high) storage key.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if strings.Compare(a.String(), b.String()) < 0 {
		return a, b
	}
	return b, a
}
