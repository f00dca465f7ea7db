package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/kozmossocial/kozmosv1-sub000/internal/touch"
	"github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
	"github.com/kozmossocial/kozmosv1-sub000/internal/touch/repository"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user"
	models "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
	userRepository "github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/errors"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

type TouchUsecase struct {
	repo   touch.TouchRepository
	users  user.UserRepository
	logger logger.Logger
}

func NewTouchUsecase(repo touch.TouchRepository, users user.UserRepository, logger logger.Logger) *TouchUsecase {
	return &TouchUsecase{repo: repo, users: users, logger: logger}
}

func (uc *TouchUsecase) Request(ctx context.Context, actorID uuid.UUID, targetUsername string) (*touch.RelationDTO, error) {
	targetUsername = strings.TrimSpace(targetUsername)
	if targetUsername == "" {
		return nil, errors.ErrUsernameRequired
	}

	target, err := uc.users.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		if pkgErrors.Is(err, userRepository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to resolve target", "op", "touch.Request", "actor", actorID, "username", targetUsername, "err", err)
		return nil, errors.Internal("failed to resolve user")
	}
	if target.ID == actorID {
		return nil, errors.ErrSelfRelation
	}

	rel, err := uc.repo.GetRelationByPair(ctx, actorID, target.ID)
	if err != nil {
		if !pkgErrors.Is(err, repository.ErrRelationNotFound) {
			uc.logger.Error("failed to load relation", "op", "touch.Request", "actor", actorID, "target", target.ID, "err", err)
			return nil, errors.Internal("failed to load relation")
		}

		now := time.Now()
		rel = &model.TouchRelation{
			RequesterID: actorID,
			RequestedID: target.ID,
			Status:      model.RelationPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.repo.InsertRelation(ctx, rel); err != nil {
			uc.logger.Error("failed to insert relation", "op", "touch.Request", "actor", actorID, "target", target.ID, "err", err)
			return nil, errors.Internal("failed to create relation")
		}
		return relationDTO(rel), nil
	}

	switch rel.Status {
	case model.RelationAccepted:
		// already in touch, nothing to do

	case model.RelationPending:
		if rel.RequesterID == actorID {
			break // duplicate request from the same side is a no-op
		}
		// counter-request from the requested party accepts the relation
		now := time.Now()
		rel.Status = model.RelationAccepted
		rel.RespondedAt = &now
		rel.UpdatedAt = now
		if err := uc.repo.UpdateRelation(ctx, rel, model.RelationPending); err != nil {
			uc.logger.Error("failed to accept relation", "op", "touch.Request", "actor", actorID, "relation", rel.ID, "err", err)
			return nil, errors.Internal("failed to update relation")
		}

	case model.RelationDeclined:
		// declined relations reopen with the caller as the new requester
		other := rel.RequesterID
		if other == actorID {
			other = rel.RequestedID
		}
		rel.RequesterID = actorID
		rel.RequestedID = other
		rel.Status = model.RelationPending
		rel.RespondedAt = nil
		rel.UpdatedAt = time.Now()
		if err := uc.repo.UpdateRelation(ctx, rel, model.RelationDeclined); err != nil {
			uc.logger.Error("failed to reopen relation", "op", "touch.Request", "actor", actorID, "relation", rel.ID, "err", err)
			return nil, errors.Internal("failed to update relation")
		}
	}

	return relationDTO(rel), nil
}

func (uc *TouchUsecase) Respond(ctx context.Context, actorID, relationID uuid.UUID, accept bool) (*touch.RelationDTO, error) {
	rel, err := uc.repo.GetRelationByID(ctx, relationID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrRelationNotFound) {
			return nil, errors.ErrRelationNotFound
		}
		uc.logger.Error("failed to load relation", "op", "touch.Respond", "actor", actorID, "relation", relationID, "err", err)
		return nil, errors.Internal("failed to load relation")
	}

	// ownership before state: a wrong caller gets Forbidden even when the
	// relation is already resolved
	if rel.RequestedID != actorID {
		return nil, errors.ErrNotRequestedParty
	}
	if rel.Status != model.RelationPending {
		return nil, errors.ErrRelationNotPending
	}

	now := time.Now()
	if accept {
		rel.Status = model.RelationAccepted
	} else {
		rel.Status = model.RelationDeclined
	}
	rel.RespondedAt = &now
	rel.UpdatedAt = now

	if err := uc.repo.UpdateRelation(ctx, rel, model.RelationPending); err != nil {
		uc.logger.Error("failed to update relation", "op", "touch.Respond", "actor", actorID, "relation", relationID, "err", err)
		return nil, errors.Internal("failed to update relation")
	}
	return relationDTO(rel), nil
}

func (uc *TouchUsecase) Remove(ctx context.Context, actorID, targetUserID uuid.UUID) error {
	if err := uc.repo.DeleteRelationWithOrder(ctx, actorID, targetUserID); err != nil {
		uc.logger.Error("failed to delete relation", "op", "touch.Remove", "actor", actorID, "target", targetUserID, "err", err)
		return errors.Internal("failed to delete relation")
	}
	return nil
}

func (uc *TouchUsecase) List(ctx context.Context, actorID uuid.UUID) (*touch.TouchListDTO, error) {
	rels, err := uc.repo.ListAcceptedRelations(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to list relations", "op", "touch.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list relations")
	}

	contactRelation := make(map[uuid.UUID]uuid.UUID, len(rels))
	contactIDs := make([]uuid.UUID, 0, len(rels))
	for _, rel := range rels {
		other := rel.RequesterID
		if other == actorID {
			other = rel.RequestedID
		}
		contactRelation[other] = rel.ID
		contactIDs = append(contactIDs, other)
	}

	contacts, err := uc.contactsFor(ctx, actorID, contactIDs, contactRelation)
	if err != nil {
		return nil, err
	}

	incoming, err := uc.incomingFor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return &touch.TouchListDTO{InTouch: contacts, Incoming: incoming}, nil
}

func (uc *TouchUsecase) contactsFor(ctx context.Context, actorID uuid.UUID, contactIDs []uuid.UUID, contactRelation map[uuid.UUID]uuid.UUID) ([]touch.ContactDTO, error) {
	users, err := uc.users.ListUsersByIDs(ctx, contactIDs)
	if err != nil {
		uc.logger.Error("failed to load contacts", "op", "touch.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to load contacts")
	}

	entries, err := uc.repo.ListOrderEntries(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to load order entries", "op", "touch.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to load contacts")
	}
	rank := make(map[uuid.UUID]int, len(entries))
	for _, e := range entries {
		rank[e.ContactID] = e.SortOrder
	}

	contacts := make([]touch.ContactDTO, 0, len(users))
	for _, u := range users {
		contacts = append(contacts, touch.ContactDTO{
			UserID:      u.ID,
			Username:    u.Username,
			DisplayName: u.Name,
			Avatar:      u.Avatar,
			RelationID:  contactRelation[u.ID],
		})
	}

	sort.Slice(contacts, func(i, j int) bool {
		ri, iRanked := rank[contacts[i].UserID]
		rj, jRanked := rank[contacts[j].UserID]
		if iRanked != jRanked {
			return iRanked // unsorted entries sort last
		}
		if iRanked && ri != rj {
			return ri < rj
		}
		return strings.ToLower(contacts[i].Username) < strings.ToLower(contacts[j].Username)
	})
	return contacts, nil
}

func (uc *TouchUsecase) incomingFor(ctx context.Context, actorID uuid.UUID) ([]touch.IncomingRequestDTO, error) {
	rels, err := uc.repo.ListIncomingPending(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to list incoming requests", "op", "touch.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list incoming requests")
	}

	requesterIDs := make([]uuid.UUID, 0, len(rels))
	for _, rel := range rels {
		requesterIDs = append(requesterIDs, rel.RequesterID)
	}
	users, err := uc.users.ListUsersByIDs(ctx, requesterIDs)
	if err != nil {
		uc.logger.Error("failed to load requesters", "op", "touch.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list incoming requests")
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	incoming := make([]touch.IncomingRequestDTO, 0, len(rels))
	for _, rel := range rels {
		u, ok := byID[rel.RequesterID]
		if !ok {
			continue // requester account no longer resolvable
		}
		incoming = append(incoming, touch.IncomingRequestDTO{
			RelationID:  rel.ID,
			RequesterID: rel.RequesterID,
			Username:    u.Username,
			DisplayName: u.Name,
			Avatar:      u.Avatar,
			RequestedAt: rel.CreatedAt,
		})
	}

	sort.Slice(incoming, func(i, j int) bool {
		return strings.ToLower(incoming[i].Username) < strings.ToLower(incoming[j].Username)
	})
	return incoming, nil
}

func (uc *TouchUsecase) SetOrder(ctx context.Context, actorID uuid.UUID, orderedUserIDs []uuid.UUID) error {
	rels, err := uc.repo.ListAcceptedRelations(ctx, actorID)
	if err != nil {
		uc.logger.Error("failed to list relations", "op", "touch.SetOrder", "actor", actorID, "err", err)
		return errors.Internal("failed to update order")
	}
	accepted := make(map[uuid.UUID]bool, len(rels))
	for _, rel := range rels {
		other := rel.RequesterID
		if other == actorID {
			other = rel.RequestedID
		}
		accepted[other] = true
	}

	seen := make(map[uuid.UUID]bool, len(orderedUserIDs))
	entries := make([]model.TouchOrderEntry, 0, len(orderedUserIDs))
	for _, id := range orderedUserIDs {
		if seen[id] || !accepted[id] {
			continue // duplicates and stale contacts are dropped, not errors
		}
		seen[id] = true
		entries = append(entries, model.TouchOrderEntry{
			OwnerID:   actorID,
			ContactID: id,
			SortOrder: len(entries),
		})
	}

	if err := uc.repo.ReplaceOrderEntries(ctx, actorID, entries); err != nil {
		uc.logger.Error("failed to replace order entries", "op", "touch.SetOrder", "actor", actorID, "err", err)
		return errors.Internal("failed to update order")
	}
	return nil
}

func relationDTO(rel *model.TouchRelation) *touch.RelationDTO {
	return &touch.RelationDTO{
		ID:          rel.ID,
		RequesterID: rel.RequesterID,
		RequestedID: rel.RequestedID,
		Status:      rel.Status,
	}
}
