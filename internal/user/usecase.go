package user

import (
	"context"

	"github.com/google/uuid"
)

type IdentityUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
	GetProfileByUsername(ctx context.Context, username string) (*UserProfileDTO, error)
}
