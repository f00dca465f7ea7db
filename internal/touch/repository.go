package touch

import (
	"context"

	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
)

type TouchRepository interface {
	GetRelationByID(ctx context.Context, id uuid.UUID) (*model.TouchRelation, error)

	// GetRelationByPair matches the unordered pair {a, b} regardless of
	// which user is stored as requester.
	GetRelationByPair(ctx context.Context, a, b uuid.UUID) (*model.TouchRelation, error)

	InsertRelation(ctx context.Context, rel *model.TouchRelation) error

	// UpdateRelation writes rel's mutable fields conditionally on the row
	// still holding the expected status. A lost race means the same
	// logical transition already happened; callers treat it as converged.
	UpdateRelation(ctx context.Context, rel *model.TouchRelation, expect model.RelationStatus) error

	// DeleteRelationWithOrder removes the pair's relation row (any status)
	// together with both directions' order entries, in one transaction.
	// Deleting an absent pair is not an error.
	DeleteRelationWithOrder(ctx context.Context, a, b uuid.UUID) error

	ListAcceptedRelations(ctx context.Context, userID uuid.UUID) ([]model.TouchRelation, error)
	ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]model.TouchRelation, error)

	ListOrderEntries(ctx context.Context, ownerID uuid.UUID) ([]model.TouchOrderEntry, error)

	// ReplaceOrderEntries swaps the owner's entire order list for the
	// given entries (delete-all-then-insert, one transaction).
	ReplaceOrderEntries(ctx context.Context, ownerID uuid.UUID, entries []model.TouchOrderEntry) error
}
