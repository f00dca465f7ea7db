package direct

import (
	"context"

	"github.com/google/uuid"
)

type DirectUsecase interface {
	// OpenChannel derives the canonical channel for actor and target.
	// Requires an accepted touch relation between the two; both call
	// orders resolve to the same row.
	OpenChannel(ctx context.Context, actorID, targetUserID uuid.UUID) (*ChannelDTO, error)

	// ListChannels returns the actor's channels in their explicit order,
	// then by most recent activity.
	ListChannels(ctx context.Context, actorID uuid.UUID) ([]ChannelDTO, error)

	SendMessage(ctx context.Context, actorID, channelID uuid.UUID, content string) (*MessageDTO, error)
	ListMessages(ctx context.Context, actorID, channelID uuid.UUID, limit int) ([]MessageDTO, error)

	// Remove hard-deletes the channel and both sides' order entries.
	// An absent channel is not an error.
	Remove(ctx context.Context, actorID, channelID uuid.UUID) error

	// SetOrder replaces the actor's channel ordering; ids for channels
	// the actor no longer participates in are dropped.
	SetOrder(ctx context.Context, actorID uuid.UUID, orderedChannelIDs []uuid.UUID) error
}
