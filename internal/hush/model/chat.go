package model

import (
	"time"

	"github.com/google/uuid"

	user "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
)

type ChatStatus string

const (
	ChatOpen   ChatStatus = "open"
	ChatClosed ChatStatus = "closed"
)

// HushChat rows are never deleted; a closed chat just drops out of
// discovery while its memberships and messages stay readable.
type HushChat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	CreatedBy uuid.UUID  `bun:",notnull,type:uuid"`
	Creator   *user.User `bun:"rel:belongs-to,join:created_by=id"`

	Status ChatStatus `bun:",notnull,default:'open'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
