package hush

import (
	"context"

	"github.com/google/uuid"
)

type HushUsecase interface {
	// CreateWith opens a new chat owned by actor with target invited.
	CreateWith(ctx context.Context, actorID, targetUserID uuid.UUID) (*ChatDTO, error)

	// Invite upserts target as an invited member. Owner only. Members in
	// an active or pending state cannot be re-invited.
	Invite(ctx context.Context, actorID, chatID, targetUserID uuid.UUID) error

	// RequestJoin upserts the actor as a requested member. Allowed with
	// no prior row or a declined/left/removed one.
	RequestJoin(ctx context.Context, actorID, chatID uuid.UUID) error

	// ResolveRequest lets the owner accept or decline a join request.
	ResolveRequest(ctx context.Context, actorID, chatID, memberUserID uuid.UUID, accept bool) error

	// RespondInvite lets an invited user accept or decline their invite.
	RespondInvite(ctx context.Context, actorID, chatID uuid.UUID, accept bool) error

	// Leave marks the actor's row left. An owner leaving a chat whose
	// active membership would drop to at most two closes the chat.
	Leave(ctx context.Context, actorID, chatID uuid.UUID) error

	// RemoveMember marks target's row removed. Owner only, not on self.
	RemoveMember(ctx context.Context, actorID, chatID, targetUserID uuid.UUID) error

	SendMessage(ctx context.Context, actorID, chatID uuid.UUID, content string) (*MessageDTO, error)
	ListMessages(ctx context.Context, actorID, chatID uuid.UUID, limit int) ([]MessageDTO, error)

	// List returns every open chat with its derived label and the actor's
	// standing, plus the actor's invites and the join requests waiting on
	// chats they own.
	List(ctx context.Context, actorID uuid.UUID) (*HushListDTO, error)
}
