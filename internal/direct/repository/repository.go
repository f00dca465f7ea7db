package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/kozmossocial/kozmosv1-sub000/internal/direct/model"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

var ErrChannelNotFound = errors.New("channel not found")

type DirectRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewDirectRepository(db *bun.DB, logger logger.Logger) *DirectRepository {
	return &DirectRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DirectRepository) GetChannel(ctx context.Context, channelID uuid.UUID) (*model.DirectChannel, error) {
	ch := new(model.DirectChannel)
	err := r.db.NewSelect().Model(ch).Where("id = ?", channelID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, errors.Wrap(err, "directRepo.GetChannel.Scan: ")
	}
	return ch, nil
}

func (r *DirectRepository) UpsertChannel(ctx context.Context, ch *model.DirectChannel) error {
	_, err := r.db.NewInsert().
		Model(ch).
		On("CONFLICT (participant_low, participant_high) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "directRepo.UpsertChannel.Exec: ")
	}
	return nil
}

func (r *DirectRepository) TouchChannel(ctx context.Context, channelID uuid.UUID, at time.Time) error {
	_, err := r.db.NewUpdate().
		Model((*model.DirectChannel)(nil)).
		Set("updated_at = ?", at).
		Where("id = ?", channelID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "directRepo.TouchChannel.Exec: ")
	}
	return nil
}

func (r *DirectRepository) ListChannelsFor(ctx context.Context, userID uuid.UUID) ([]model.DirectChannel, error) {
	var channels []model.DirectChannel
	err := r.db.NewSelect().
		Model(&channels).
		Where("participant_low = ? OR participant_high = ?", userID, userID).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "directRepo.ListChannelsFor.Scan: ")
	}
	return channels, nil
}

func (r *DirectRepository) DeleteChannelWithOrder(ctx context.Context, channelID uuid.UUID) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*model.DirectMessage)(nil)).
			Where("channel_id = ?", channelID).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*model.DirectChannelOrderEntry)(nil)).
			Where("channel_id = ?", channelID).
			Exec(ctx); err != nil {
			return err
		}

		_, err := tx.NewDelete().
			Model((*model.DirectChannel)(nil)).
			Where("id = ?", channelID).
			Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "directRepo.DeleteChannelWithOrder.Tx: ")
	}
	return nil
}

func (r *DirectRepository) InsertMessage(ctx context.Context, msg *model.DirectMessage) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "directRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *DirectRepository) ListMessages(ctx context.Context, channelID uuid.UUID, limit int) ([]model.DirectMessage, error) {
	var msgs []model.DirectMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Where("channel_id = ?", channelID).
		Order("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "directRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

func (r *DirectRepository) ListOrderEntries(ctx context.Context, ownerID uuid.UUID) ([]model.DirectChannelOrderEntry, error) {
	var entries []model.DirectChannelOrderEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("owner_id = ?", ownerID).
		Order("sort_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "directRepo.ListOrderEntries.Scan: ")
	}
	return entries, nil
}

func (r *DirectRepository) ReplaceOrderEntries(ctx context.Context, ownerID uuid.UUID, entries []model.DirectChannelOrderEntry) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.DirectChannelOrderEntry)(nil)).
			Where("owner_id = ?", ownerID).
			Exec(ctx)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		_, err = tx.NewInsert().Model(&entries).Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "directRepo.ReplaceOrderEntries.Tx: ")
	}
	return nil
}
