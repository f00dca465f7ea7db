package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/kozmossocial/kozmosv1-sub000/internal/user"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/errors"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

type IdentityUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
}

func NewIdentityUsecase(repo user.UserRepository, logger logger.Logger) *IdentityUsecase {
	return &IdentityUsecase{repo: repo, logger: logger}
}

func (uc *IdentityUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "op", "identity.GetProfile", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load user")
	}
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Avatar:      u.Avatar,
	}, nil
}

func (uc *IdentityUsecase) GetProfileByUsername(ctx context.Context, username string) (*user.UserProfileDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.ErrUsernameRequired
	}

	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to resolve username", "op", "identity.GetProfileByUsername", "username", username, "err", err)
		return nil, errors.Internal("failed to load user")
	}
	return &user.UserProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.Name,
		Avatar:      u.Avatar,
	}, nil
}
