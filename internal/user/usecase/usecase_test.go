package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kozmossocial/kozmosv1-sub000/internal/user/mocks"
	models "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	appErrors "github.com/kozmossocial/kozmosv1-sub000/pkg/errors"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

func newIdentityUsecase(t *testing.T) (*IdentityUsecase, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return NewIdentityUsecase(repo, logger.Logger{}), repo
}

func TestIdentityUsecase_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newIdentityUsecase(t)

		repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(
			&models.User{ID: userID, Username: "alice", Name: "Alice", Avatar: "a.png"}, nil)

		p, err := uc.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "alice", p.Username)
		assert.Equal(t, "Alice", p.DisplayName)
	})

	t.Run("sad path - unknown user", func(t *testing.T) {
		uc, repo := newIdentityUsecase(t)

		repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(nil, repository.ErrUserNotFound)

		_, err := uc.GetProfile(context.Background(), userID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})
}

func TestIdentityUsecase_GetProfileByUsername(t *testing.T) {
	t.Run("happy path - trims surrounding whitespace", func(t *testing.T) {
		uc, repo := newIdentityUsecase(t)

		repo.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(
			&models.User{ID: uuid.New(), Username: "alice"}, nil)

		p, err := uc.GetProfileByUsername(context.Background(), "  alice ")
		require.NoError(t, err)
		assert.Equal(t, "alice", p.Username)
	})

	t.Run("sad path - blank username", func(t *testing.T) {
		uc, _ := newIdentityUsecase(t)

		_, err := uc.GetProfileByUsername(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - unknown username", func(t *testing.T) {
		uc, repo := newIdentityUsecase(t)

		repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := uc.GetProfileByUsername(context.Background(), "ghost")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})
}
