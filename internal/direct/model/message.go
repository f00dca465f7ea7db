package model

import (
	"time"

	"github.com/google/uuid"
)

type DirectMessage struct {
	ID        uuid.UUID      `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChannelID uuid.UUID      `bun:",notnull,type:uuid"`
	Channel   *DirectChannel `bun:"rel:belongs-to,join:channel_id=id"`

	UserID uuid.UUID `bun:",notnull,type:uuid"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
