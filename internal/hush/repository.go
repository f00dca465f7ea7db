package hush

import (
	"context"

	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
)

type HushRepository interface {
	// InsertChatWithMembers creates the chat and its initial membership
	// rows in one transaction.
	InsertChatWithMembers(ctx context.Context, chat *model.HushChat, members []model.HushMembership) error

	GetChat(ctx context.Context, chatID uuid.UUID) (*model.HushChat, error)

	// CloseChat transitions an open chat to closed; closing an already
	// closed chat is a no-op.
	CloseChat(ctx context.Context, chatID uuid.UUID) error

	GetMembership(ctx context.Context, chatID, userID uuid.UUID) (*model.HushMembership, error)

	// UpsertMembership inserts the row or overwrites role/status/display
	// name on the (chat_id, user_id) conflict.
	UpsertMembership(ctx context.Context, m *model.HushMembership) error

	// UpdateMembershipStatus transitions the row conditionally on its
	// current status, so racing writes of the same transition converge.
	UpdateMembershipStatus(ctx context.Context, chatID, userID uuid.UUID, expect, to model.MembershipStatus) error

	ListMemberships(ctx context.Context, chatID uuid.UUID) ([]model.HushMembership, error)
	ListMembershipsForChats(ctx context.Context, chatIDs []uuid.UUID) ([]model.HushMembership, error)

	ListOpenChats(ctx context.Context) ([]model.HushChat, error)

	InsertMessage(ctx context.Context, msg *model.HushMessage) error

	// ListMessages returns up to limit messages, oldest first.
	ListMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]model.HushMessage, error)
}
