package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrMembershipNotFound = errors.New("membership not found")
)

type HushRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewHushRepository(db *bun.DB, logger logger.Logger) *HushRepository {
	return &HushRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *HushRepository) InsertChatWithMembers(ctx context.Context, chat *model.HushChat, members []model.HushMembership) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(chat).Returning("*").Exec(ctx); err != nil {
			return err
		}

		for i := range members {
			members[i].ChatID = chat.ID
		}
		_, err := tx.NewInsert().Model(&members).Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "hushRepo.InsertChatWithMembers.Tx: ")
	}
	return nil
}

func (r *HushRepository) GetChat(ctx context.Context, chatID uuid.UUID) (*model.HushChat, error) {
	chat := new(model.HushChat)
	err := r.db.NewSelect().Model(chat).Where("id = ?", chatID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, errors.Wrap(err, "hushRepo.GetChat.Scan: ")
	}
	return chat, nil
}

func (r *HushRepository) CloseChat(ctx context.Context, chatID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.HushChat)(nil)).
		Set("status = ?", model.ChatClosed).
		Where("id = ? AND status = ?", chatID, model.ChatOpen).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "hushRepo.CloseChat.Exec: ")
	}
	return nil
}

func (r *HushRepository) GetMembership(ctx context.Context, chatID, userID uuid.UUID) (*model.HushMembership, error) {
	m := new(model.HushMembership)
	err := r.db.NewSelect().Model(m).Where("chat_id = ? AND user_id = ?", chatID, userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, errors.Wrap(err, "hushRepo.GetMembership.Scan: ")
	}
	return m, nil
}

func (r *HushRepository) UpsertMembership(ctx context.Context, m *model.HushMembership) error {
	_, err := r.db.NewInsert().
		Model(m).
		On("CONFLICT (chat_id, user_id) DO UPDATE").
		Set("role = EXCLUDED.role").
		Set("status = EXCLUDED.status").
		Set("display_name = EXCLUDED.display_name").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "hushRepo.UpsertMembership.Exec: ")
	}
	return nil
}

// UpdateMembershipStatus is conditional on the current status. Zero rows
// affected means someone else already applied the transition.
func (r *HushRepository) UpdateMembershipStatus(ctx context.Context, chatID, userID uuid.UUID, expect, to model.MembershipStatus) error {
	_, err := r.db.NewUpdate().
		Model((*model.HushMembership)(nil)).
		Set("status = ?", to).
		Where("chat_id = ? AND user_id = ? AND status = ?", chatID, userID, expect).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "hushRepo.UpdateMembershipStatus.Exec: ")
	}
	return nil
}

func (r *HushRepository) ListMemberships(ctx context.Context, chatID uuid.UUID) ([]model.HushMembership, error) {
	var members []model.HushMembership
	err := r.db.NewSelect().
		Model(&members).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hushRepo.ListMemberships.Scan: ")
	}
	return members, nil
}

func (r *HushRepository) ListMembershipsForChats(ctx context.Context, chatIDs []uuid.UUID) ([]model.HushMembership, error) {
	if len(chatIDs) == 0 {
		return nil, nil
	}
	var members []model.HushMembership
	err := r.db.NewSelect().
		Model(&members).
		Where("chat_id IN (?)", bun.In(chatIDs)).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hushRepo.ListMembershipsForChats.Scan: ")
	}
	return members, nil
}

func (r *HushRepository) ListOpenChats(ctx context.Context) ([]model.HushChat, error) {
	var chats []model.HushChat
	err := r.db.NewSelect().
		Model(&chats).
		Where("status = ?", model.ChatOpen).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hushRepo.ListOpenChats.Scan: ")
	}
	return chats, nil
}

func (r *HushRepository) InsertMessage(ctx context.Context, msg *model.HushMessage) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "hushRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *HushRepository) ListMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]model.HushMessage, error) {
	var msgs []model.HushMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "hushRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}
