package model

import (
	"github.com/google/uuid"
)

// TouchOrderEntry is one owner's explicit rank for one contact. Not
// symmetric: each side of a relation orders the other independently.
type TouchOrderEntry struct {
	OwnerID   uuid.UUID `bun:",pk,type:uuid"`
	ContactID uuid.UUID `bun:",pk,type:uuid"`

	SortOrder int `bun:",notnull"`
}
