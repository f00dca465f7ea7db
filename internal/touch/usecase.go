package touch

import (
	"context"

	"github.com/google/uuid"
)

type TouchUsecase interface {
	// Request asks to keep in touch with the user behind targetUsername.
	// Idempotent from the requester's side; a counter-request from the
	// requested side accepts the relation; a declined relation reopens
	// with the caller as the new requester.
	Request(ctx context.Context, actorID uuid.UUID, targetUsername string) (*RelationDTO, error)

	// Respond accepts or declines a pending request addressed to actor.
	Respond(ctx context.Context, actorID, relationID uuid.UUID, accept bool) (*RelationDTO, error)

	// Remove hard-deletes the relation with targetUserID, whatever its
	// status, and both sides' order entries. Absent relations are fine.
	Remove(ctx context.Context, actorID, targetUserID uuid.UUID) error

	// List returns accepted contacts in the actor's explicit order
	// (unsorted contacts last, ties by username) plus incoming requests.
	List(ctx context.Context, actorID uuid.UUID) (*TouchListDTO, error)

	// SetOrder replaces the actor's contact ordering. Ids that are not
	// currently accepted contacts are dropped; an empty list clears it.
	SetOrder(ctx context.Context, actorID uuid.UUID, orderedUserIDs []uuid.UUID) error
}
