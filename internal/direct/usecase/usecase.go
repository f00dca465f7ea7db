package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/kozmossocial/kozmosv1-sub000/internal/direct"
	"github.com/kozmossocial/kozmosv1-sub000/internal/direct/model"
	"github.com/kozmossocial/kozmosv1-sub000/internal/direct/repository"
	"github.com/kozmossocial/kozmosv1-sub000/internal/touch"
	touchModel "github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
	touchRepository "github.com/kozmossocial/kozmosv1-sub000/internal/touch/repository"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user"
	userRepository "github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/errors"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

const (
	maxMessageLen = 2000

	defaultMessageLimit = 200
	maxMessageLimit     = 300
)

// DirectUsecase derives one-to-one channels from the touch relation set.
// It is the only component reading another engine's store: the accepted
// gate goes straight to the touch repository.
type DirectUsecase struct {
	repo   direct.DirectRepository
	touch  touch.TouchRepository
	users  user.UserRepository
	logger logger.Logger
}

func NewDirectUsecase(repo direct.DirectRepository, touchRepo touch.TouchRepository, users user.UserRepository, logger logger.Logger) *DirectUsecase {
	return &DirectUsecase{repo: repo, touch: touchRepo, users: users, logger: logger}
}

func (uc *DirectUsecase) OpenChannel(ctx context.Context, actorID, targetUserID uuid.UUID) (*direct.ChannelDTO, error) {
	if targetUserID == actorID {
		return nil, errors.ErrSelfRelation
	}

	rel, err := uc.touch.GetRelationByPair(ctx, actorID, targetUserID)
	if err != nil {
		if pkgErrors.Is(err, touchRepository.ErrRelationNotFound) {
			return nil, errors.ErrNotInTouch
		}
		uc.logger.Error("failed to load relation", "op", "direct.OpenChannel", "actor", actorID, "target", targetUserID, "err", err)
		return nil, errors.Internal("failed to load relation")
	}
	if rel.Status != touchModel.RelationAccepted {
		return nil, errors.ErrNotInTouch
	}

	target, err := uc.users.GetUserByID(ctx, targetUserID)
	if err != nil {
		if pkgErrors.Is(err, userRepository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load target", "op", "direct.OpenChannel", "actor", actorID, "target", targetUserID, "err", err)
		return nil, errors.Internal("failed to load user")
	}

	now := time.Now()
	low, high := model.CanonicalPair(actorID, targetUserID)
	ch := &model.DirectChannel{
		ParticipantLow:  low,
		ParticipantHigh: high,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.UpsertChannel(ctx, ch); err != nil {
		uc.logger.Error("failed to upsert channel", "op", "direct.OpenChannel", "actor", actorID, "target", targetUserID, "err", err)
		return nil, errors.Internal("failed to open channel")
	}

	return &direct.ChannelDTO{
		ID:            ch.ID,
		ParticipantID: target.ID,
		Username:      target.Username,
		DisplayName:   target.Name,
		Avatar:        target.Avatar,
		UpdatedAt:     ch.UpdatedAt,
	}, nil
}

func (uc *DirectUsecase) ListChannels(ctx context.Context, actorID uuid.UUID) ([]direct.ChannelDTO, error) {
	channels, err := uc.repo.ListChannelsFor(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to list channels", "op", "direct.ListChannels", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list channels")
	}

	otherIDs := make([]uuid.UUID, 0, len(channels))
	for i := range channels {
		otherIDs = append(otherIDs, channels[i].Other(actorID))
	}
	users, err := uc.users.ListUsersByIDs(ctx, otherIDs)
	if err != nil {
		uc.logger.Error("failed to load participants", "op", "direct.ListChannels", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list channels")
	}
	profiles := make(map[uuid.UUID]int, len(users))
	for i := range users {
		profiles[users[i].ID] = i
	}

	entries, err := uc.repo.ListOrderEntries(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to load order entries", "op", "direct.ListChannels", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list channels")
	}
	rank := make(map[uuid.UUID]int, len(entries))
	for _, e := range entries {
		rank[e.ChannelID] = e.SortOrder
	}

	out := make([]direct.ChannelDTO, 0, len(channels))
	updated := make(map[uuid.UUID]time.Time, len(channels))
	for i := range channels {
		other := channels[i].Other(actorID)
		idx, ok := profiles[other]
		if !ok {
			continue // participant account no longer resolvable
		}
		u := users[idx]
		updated[channels[i].ID] = channels[i].UpdatedAt
		out = append(out, direct.ChannelDTO{
			ID:            channels[i].ID,
			ParticipantID: u.ID,
			Username:      u.Username,
			DisplayName:   u.Name,
			Avatar:        u.Avatar,
			UpdatedAt:     channels[i].UpdatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, iRanked := rank[out[i].ID]
		rj, jRanked := rank[out[j].ID]
		if iRanked != jRanked {
			return iRanked
		}
		if iRanked && ri != rj {
			return ri < rj
		}
		return updated[out[i].ID].After(updated[out[j].ID])
	})
	return out, nil
}

func (uc *DirectUsecase) SendMessage(ctx context.Context, actorID, channelID uuid.UUID, content string) (*direct.MessageDTO, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrEmptyMessage
	}
	if len([]rune(content)) > maxMessageLen {
		return nil, errors.ErrMessageTooLong
	}

	ch, err := uc.getChannel(ctx, "direct.SendMessage", channelID)
	if err != nil {
		return nil, err
	}
	if !ch.Includes(actorID) {
		return nil, errors.ErrNotParticipant
	}

	now := time.Now()
	msg := &model.DirectMessage{
		ChannelID: channelID,
		UserID:    actorID,
		Content:   content,
		CreatedAt: now,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to insert message", "op", "direct.SendMessage", "channel", channelID, "actor", actorID, "err", err)
		return nil, errors.Internal("failed to send message")
	}
	if err := uc.repo.TouchChannel(ctx, channelID, now); err != nil {
		uc.logger.Error("failed to bump channel activity", "op", "direct.SendMessage", "channel", channelID, "err", err)
		return nil, errors.Internal("failed to send message")
	}

	return &direct.MessageDTO{
		ID:        msg.ID,
		ChannelID: msg.ChannelID,
		UserID:    msg.UserID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (uc *DirectUsecase) ListMessages(ctx context.Context, actorID, channelID uuid.UUID, limit int) ([]direct.MessageDTO, error) {
	ch, err := uc.getChannel(ctx, "direct.ListMessages", channelID)
	if err != nil {
		return nil, err
	}
	if !ch.Includes(actorID) {
		return nil, errors.ErrNotParticipant
	}

	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	msgs, err := uc.repo.ListMessages(ctx, channelID, limit)
	if err != nil {
		uc.logger.Error("failed to list messages", "op", "direct.ListMessages", "channel", channelID, "err", err)
		return nil, errors.Internal("failed to list messages")
	}

	out := make([]direct.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, direct.MessageDTO{
			ID:        msg.ID,
			ChannelID: msg.ChannelID,
			UserID:    msg.UserID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return out, nil
}

func (uc *DirectUsecase) Remove(ctx context.Context, actorID, channelID uuid.UUID) error {
	ch, err := uc.repo.GetChannel(ctx, channelID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrChannelNotFound) {
			return nil // already gone
		}
		uc.logger.Error("failed to load channel", "op", "direct.Remove", "channel", channelID, "err", err)
		return errors.Internal("failed to load channel")
	}
	if !ch.Includes(actorID) {
		return errors.ErrNotParticipant
	}

	if err := uc.repo.DeleteChannelWithOrder(ctx, channelID); err != nil {
		uc.logger.Error("failed to delete channel", "op", "direct.Remove", "channel", channelID, "err", err)
		return errors.Internal("failed to delete channel")
	}
	return nil
}

func (uc *DirectUsecase) SetOrder(ctx context.Context, actorID uuid.UUID, orderedChannelIDs []uuid.UUID) error {
	channels, err := uc.repo.ListChannelsFor(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to list channels", "op", "direct.SetOrder", "actor", actorID, "err", err)
		return errors.Internal("failed to update order")
	}
	participates := make(map[uuid.UUID]bool, len(channels))
	for i := range channels {
		participates[channels[i].ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(orderedChannelIDs))
	entries := make([]model.DirectChannelOrderEntry, 0, len(orderedChannelIDs))
	for _, id := range orderedChannelIDs {
		if seen[id] || !participates[id] {
			continue
		}
		seen[id] = true
		entries = append(entries, model.DirectChannelOrderEntry{
			OwnerID:   actorID,
			ChannelID: id,
			SortOrder: len(entries),
		})
	}

	if err := uc.repo.ReplaceOrderEntries(ctx, actorID, entries); err != nil {
		uc.logger.Error("failed to replace order entries", "op", "direct.SetOrder", "actor", actorID, "err", err)
		return errors.Internal("failed to update order")
	}
	return nil
}

func (uc *DirectUsecase) getChannel(ctx context.Context, op string, channelID uuid.UUID) (*model.DirectChannel, error) {
	ch, err := uc.repo.GetChannel(ctx, channelID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrChannelNotFound) {
			return nil, errors.ErrChannelNotFound
		}
		uc.logger.Error("failed to load channel", "op", op, "channel", channelID, "err", err)
		return nil, errors.Internal("failed to load channel")
	}
	return ch, nil
}
