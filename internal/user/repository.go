package user

import (
	"context"

	"github.com/google/uuid"

	User "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
)

// UserRepository is the read-only identity surface the engines resolve
// actors and targets against. Account creation and profile editing live
// in the account service, not here.
type UserRepository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)

	// GetUserByUsername tries an exact match first and falls back to a
	// case-insensitive lookup before reporting ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*User.User, error)

	ListUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User.User, error)
}
