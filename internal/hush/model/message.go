package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
)

type HushMessage struct {
	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ChatID uuid.UUID `bun:",notnull,type:uuid"`
	Chat   *HushChat `bun:"rel:belongs-to,join:chat_id=id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Content string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
