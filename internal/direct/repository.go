package direct

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/direct/model"
)

type DirectRepository interface {
	GetChannel(ctx context.Context, channelID uuid.UUID) (*model.DirectChannel, error)

	// UpsertChannel inserts the canonical-pair row or, on conflict, bumps
	// updated_at; ch is populated with the surviving row either way.
	UpsertChannel(ctx context.Context, ch *model.DirectChannel) error

	// TouchChannel bumps the channel's updated_at for activity ordering.
	TouchChannel(ctx context.Context, channelID uuid.UUID, at time.Time) error

	ListChannelsFor(ctx context.Context, userID uuid.UUID) ([]model.DirectChannel, error)

	// DeleteChannelWithOrder hard-deletes the channel, its messages and
	// every owner's order entry for it, in one transaction.
	DeleteChannelWithOrder(ctx context.Context, channelID uuid.UUID) error

	InsertMessage(ctx context.Context, msg *model.DirectMessage) error
	ListMessages(ctx context.Context, channelID uuid.UUID, limit int) ([]model.DirectMessage, error)

	ListOrderEntries(ctx context.Context, ownerID uuid.UUID) ([]model.DirectChannelOrderEntry, error)
	ReplaceOrderEntries(ctx context.Context, ownerID uuid.UUID, entries []model.DirectChannelOrderEntry) error
}
