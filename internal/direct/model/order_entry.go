package model

import (
	"github.com/google/uuid"
)

// DirectChannelOrderEntry is one owner's explicit rank for one channel,
// mirroring the touch contact ordering.
type DirectChannelOrderEntry struct {
	OwnerID   uuid.UUID `bun:",pk,type:uuid"`
	ChannelID uuid.UUID `bun:",pk,type:uuid"`

	SortOrder int `bun:",notnull"`
}
