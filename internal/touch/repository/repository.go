package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

var ErrRelationNotFound = errors.New("relation not found")

type TouchRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewTouchRepository(db *bun.DB, logger logger.Logger) *TouchRepository {
	return &TouchRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *TouchRepository) GetRelationByID(ctx context.Context, id uuid.UUID) (*model.TouchRelation, error) {
	rel := new(model.TouchRelation)
	err := r.db.NewSelect().Model(rel).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRelationNotFound
		}
		return nil, errors.Wrap(err, "touchRepo.GetRelationByID.Scan: ")
	}
	return rel, nil
}

func (r *TouchRepository) GetRelationByPair(ctx context.Context, a, b uuid.UUID) (*model.TouchRelation, error) {
	rel := new(model.TouchRelation)
	err := r.db.NewSelect().
		Model(rel).
		Where("(requester_id = ? AND requested_id = ?) OR (requester_id = ? AND requested_id = ?)", a, b, b, a).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRelationNotFound
		}
		return nil, errors.Wrap(err, "touchRepo.GetRelationByPair.Scan: ")
	}
	return rel, nil
}

func (r *TouchRepository) InsertRelation(ctx context.Context, rel *model.TouchRelation) error {
	_, err := r.db.NewInsert().Model(rel).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "touchRepo.InsertRelation.Exec: ")
	}
	return nil
}

// UpdateRelation is conditional on the expected status so two racing
// transitions for the same row converge instead of clobbering each other.
// Zero rows affected means the transition already happened elsewhere.
func (r *TouchRepository) UpdateRelation(ctx context.Context, rel *model.TouchRelation, expect model.RelationStatus) error {
	_, err := r.db.NewUpdate().
		Model(rel).
		Column("requester_id", "requested_id", "status", "responded_at", "updated_at").
		Where("id = ? AND status = ?", rel.ID, expect).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "touchRepo.UpdateRelation.Exec: ")
	}
	return nil
}

func (r *TouchRepository) DeleteRelationWithOrder(ctx context.Context, a, b uuid.UUID) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.TouchRelation)(nil)).
			Where("(requester_id = ? AND requested_id = ?) OR (requester_id = ? AND requested_id = ?)", a, b, b, a).
			Exec(ctx)
		if err != nil {
			return err
		}

		_, err = tx.NewDelete().
			Model((*model.TouchOrderEntry)(nil)).
			Where("(owner_id = ? AND contact_id = ?) OR (owner_id = ? AND contact_id = ?)", a, b, b, a).
			Exec(ctx)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "touchRepo.DeleteRelationWithOrder.Tx: ")
	}
	return nil
}

func (r *TouchRepository) ListAcceptedRelations(ctx context.Context, userID uuid.UUID) ([]model.TouchRelation, error) {
	var rels []model.TouchRelation
	err := r.db.NewSelect().
		Model(&rels).
		Where("status = ?", model.RelationAccepted).
		Where("requester_id = ? OR requested_id = ?", userID, userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "touchRepo.ListAcceptedRelations.Scan: ")
	}
	return rels, nil
}

func (r *TouchRepository) ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]model.TouchRelation, error) {
	var rels []model.TouchRelation
	err := r.db.NewSelect().
		Model(&rels).
		Where("status = ? AND requested_id = ?", model.RelationPending, userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "touchRepo.ListIncomingPending.Scan: ")
	}
	return rels, nil
}

func (r *TouchRepository) ListOrderEntries(ctx context.Context, ownerID uuid.UUID) ([]model.TouchOrderEntry, error) {
	var entries []model.TouchOrderEntry
	err := r.db.NewSelect().
		Model(&entries).
		Where("owner_id = ?", ownerID).
		Order("sort_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "touchRepo.ListOrderEntries.Scan: ")
	}
	return entries, nil
}

func (r *TouchRepository) ReplaceOrderEntries(ctx context.Context, ownerID uuid.UUID, entries []model.TouchOrderEntry) error {
	err := r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*model.TouchOrderEntry)(nil)).
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
		return errors.Wrap(err, "touchRepo.ReplaceOrderEntries.Tx: ")
	}
	return nil
}
