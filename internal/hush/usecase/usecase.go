package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/kozmossocial/kozmosv1-sub000/internal/hush"
	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/repository"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user"
	models "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
	userRepository "github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/errors"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

const (
	maxMessageLen = 2000

	defaultMessageLimit = 200
	maxMessageLimit     = 300

	// label for chats whose visible member set is empty
	emptyChatLabel = "Hush chat"
)

type HushUsecase struct {
	repo   hush.HushRepository
	users  user.UserRepository
	logger logger.Logger
}

func NewHushUsecase(repo hush.HushRepository, users user.UserRepository, logger logger.Logger) *HushUsecase {
	return &HushUsecase{repo: repo, users: users, logger: logger}
}

func (uc *HushUsecase) CreateWith(ctx context.Context, actorID, targetUserID uuid.UUID) (*hush.ChatDTO, error) {
	if targetUserID == actorID {
		return nil, errors.ErrSelfInvite
	}

	actor, err := uc.resolveUser(ctx, "hush.CreateWith", actorID)
	if err != nil {
		return nil, err
	}
	target, err := uc.resolveUser(ctx, "hush.CreateWith", targetUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	chat := &model.HushChat{
		CreatedBy: actorID,
		Status:    model.ChatOpen,
		CreatedAt: now,
	}
	members := []model.HushMembership{
		{
			UserID:      actorID,
			Role:        model.RoleOwner,
			Status:      model.MembershipAccepted,
			DisplayName: actor.Username,
			CreatedAt:   now,
		},
		{
			UserID:      targetUserID,
			Role:        model.RoleMember,
			Status:      model.MembershipInvited,
			DisplayName: target.Username,
			CreatedAt:   now,
		},
	}

	if err := uc.repo.InsertChatWithMembers(ctx, chat, members); err != nil {
		uc.logger.Error("failed to create chat", "op", "hush.CreateWith", "actor", actorID, "target", targetUserID, "err", err)
		return nil, errors.Internal("failed to create chat")
	}

	return &hush.ChatDTO{
		ID:        chat.ID,
		CreatedBy: chat.CreatedBy,
		Status:    chat.Status,
		CreatedAt: chat.CreatedAt,
	}, nil
}

func (uc *HushUsecase) Invite(ctx context.Context, actorID, chatID, targetUserID uuid.UUID) error {
	chat, err := uc.requireOwner(ctx, "hush.Invite", actorID, chatID)
	if err != nil {
		return err
	}
	if chat.Status == model.ChatClosed {
		return errors.ErrChatClosed
	}
	if targetUserID == actorID {
		return errors.ErrSelfInvite
	}

	target, err := uc.resolveUser(ctx, "hush.Invite", targetUserID)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetMembership(ctx, chatID, targetUserID)
	if err != nil && !pkgErrors.Is(err, repository.ErrMembershipNotFound) {
		uc.logger.Error("failed to load membership", "op", "hush.Invite", "chat", chatID, "target", targetUserID, "err", err)
		return errors.Internal("failed to load membership")
	}
	if existing != nil && !existing.Status.Rejoinable() {
		return errors.ErrCannotInvite
	}

	m := &model.HushMembership{
		ChatID:      chatID,
		UserID:      targetUserID,
		Role:        model.RoleMember,
		Status:      model.MembershipInvited,
		DisplayName: target.Username,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.UpsertMembership(ctx, m); err != nil {
		uc.logger.Error("failed to upsert membership", "op", "hush.Invite", "chat", chatID, "target", targetUserID, "err", err)
		return errors.Internal("failed to invite member")
	}
	return nil
}

func (uc *HushUsecase) RequestJoin(ctx context.Context, actorID, chatID uuid.UUID) error {
	chat, err := uc.getChat(ctx, "hush.RequestJoin", chatID)
	if err != nil {
		return err
	}
	if chat.Status == model.ChatClosed {
		return errors.ErrChatClosed
	}

	existing, err := uc.repo.GetMembership(ctx, chatID, actorID)
	if err != nil && !pkgErrors.Is(err, repository.ErrMembershipNotFound) {
		uc.logger.Error("failed to load membership", "op", "hush.RequestJoin", "chat", chatID, "actor", actorID, "err", err)
		return errors.Internal("failed to load membership")
	}
	if existing != nil && !existing.Status.Rejoinable() {
		return errors.ErrCannotRequestJoin
	}

	actor, err := uc.resolveUser(ctx, "hush.RequestJoin", actorID)
	if err != nil {
		return err
	}

	m := &model.HushMembership{
		ChatID:      chatID,
		UserID:      actorID,
		Role:        model.RoleMember,
		Status:      model.MembershipRequested,
		DisplayName: actor.Username,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.UpsertMembership(ctx, m); err != nil {
		uc.logger.Error("failed to upsert membership", "op", "hush.RequestJoin", "chat", chatID, "actor", actorID, "err", err)
		return errors.Internal("failed to request join")
	}
	return nil
}

func (uc *HushUsecase) ResolveRequest(ctx context.Context, actorID, chatID, memberUserID uuid.UUID, accept bool) error {
	if _, err := uc.requireOwner(ctx, "hush.ResolveRequest", actorID, chatID); err != nil {
		return err
	}

	m, err := uc.getMembership(ctx, "hush.ResolveRequest", chatID, memberUserID)
	if err != nil {
		return err
	}
	if m.Status != model.MembershipRequested {
		return errors.ErrJoinRequestNotPending
	}

	to := model.MembershipDeclined
	if accept {
		to = model.MembershipAccepted
	}
	if err := uc.repo.UpdateMembershipStatus(ctx, chatID, memberUserID, model.MembershipRequested, to); err != nil {
		uc.logger.Error("failed to update membership", "op", "hush.ResolveRequest", "chat", chatID, "member", memberUserID, "err", err)
		return errors.Internal("failed to resolve request")
	}
	return nil
}

func (uc *HushUsecase) RespondInvite(ctx context.Context, actorID, chatID uuid.UUID, accept bool) error {
	if _, err := uc.getChat(ctx, "hush.RespondInvite", chatID); err != nil {
		return err
	}

	m, err := uc.getMembership(ctx, "hush.RespondInvite", chatID, actorID)
	if err != nil {
		return err
	}
	if m.Status != model.MembershipInvited {
		return errors.ErrNotInvited
	}

	to := model.MembershipDeclined
	if accept {
		to = model.MembershipAccepted
	}
	if err := uc.repo.UpdateMembershipStatus(ctx, chatID, actorID, model.MembershipInvited, to); err != nil {
		uc.logger.Error("failed to update membership", "op", "hush.RespondInvite", "chat", chatID, "actor", actorID, "err", err)
		return errors.Internal("failed to respond to invite")
	}
	return nil
}

func (uc *HushUsecase) Leave(ctx context.Context, actorID, chatID uuid.UUID) error {
	chat, err := uc.getChat(ctx, "hush.Leave", chatID)
	if err != nil {
		return err
	}

	m, err := uc.getMembership(ctx, "hush.Leave", chatID, actorID)
	if err != nil {
		return err
	}

	// active count is taken before the leave is applied
	members, err := uc.repo.ListMemberships(ctx, chatID)
	if err != nil {
		uc.logger.Error("failed to list memberships", "op", "hush.Leave", "chat", chatID, "err", err)
		return errors.Internal("failed to leave chat")
	}
	active := 0
	for _, member := range members {
		if member.Status.Active() {
			active++
		}
	}

	if err := uc.repo.UpdateMembershipStatus(ctx, chatID, actorID, m.Status, model.MembershipLeft); err != nil {
		uc.logger.Error("failed to update membership", "op", "hush.Leave", "chat", chatID, "actor", actorID, "err", err)
		return errors.Internal("failed to leave chat")
	}

	// a chat cannot continue ownerless once at most two active
	// participants would remain
	if m.Role == model.RoleOwner && active <= 3 && chat.Status == model.ChatOpen {
		if err := uc.repo.CloseChat(ctx, chatID); err != nil {
			uc.logger.Error("failed to close chat", "op", "hush.Leave", "chat", chatID, "err", err)
			return errors.Internal("failed to leave chat")
		}
	}
	return nil
}

func (uc *HushUsecase) RemoveMember(ctx context.Context, actorID, chatID, targetUserID uuid.UUID) error {
	if _, err := uc.requireOwner(ctx, "hush.RemoveMember", actorID, chatID); err != nil {
		return err
	}
	if targetUserID == actorID {
		return errors.ErrSelfRemove
	}

	m, err := uc.getMembership(ctx, "hush.RemoveMember", chatID, targetUserID)
	if err != nil {
		return err
	}

	if err := uc.repo.UpdateMembershipStatus(ctx, chatID, targetUserID, m.Status, model.MembershipRemoved); err != nil {
		uc.logger.Error("failed to update membership", "op", "hush.RemoveMember", "chat", chatID, "target", targetUserID, "err", err)
		return errors.Internal("failed to remove member")
	}
	return nil
}

func (uc *HushUsecase) SendMessage(ctx context.Context, actorID, chatID uuid.UUID, content string) (*hush.MessageDTO, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.ErrEmptyMessage
	}
	if len([]rune(content)) > maxMessageLen {
		return nil, errors.ErrMessageTooLong
	}

	chat, err := uc.getChat(ctx, "hush.SendMessage", chatID)
	if err != nil {
		return nil, err
	}
	if chat.Status == model.ChatClosed {
		return nil, errors.ErrChatClosed
	}

	m, err := uc.repo.GetMembership(ctx, chatID, actorID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.ErrNotChatMember
		}
		uc.logger.Error("failed to load membership", "op", "hush.SendMessage", "chat", chatID, "actor", actorID, "err", err)
		return nil, errors.Internal("failed to load membership")
	}
	if m.Status != model.MembershipAccepted {
		return nil, errors.ErrNotChatMember
	}

	msg := &model.HushMessage{
		ChatID:    chatID,
		UserID:    actorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to insert message", "op", "hush.SendMessage", "chat", chatID, "actor", actorID, "err", err)
		return nil, errors.Internal("failed to send message")
	}

	return &hush.MessageDTO{
		ID:          msg.ID,
		ChatID:      msg.ChatID,
		UserID:      msg.UserID,
		DisplayName: m.DisplayName,
		Content:     msg.Content,
		CreatedAt:   msg.CreatedAt,
	}, nil
}

func (uc *HushUsecase) ListMessages(ctx context.Context, actorID, chatID uuid.UUID, limit int) ([]hush.MessageDTO, error) {
	if _, err := uc.getChat(ctx, "hush.ListMessages", chatID); err != nil {
		return nil, err
	}

	m, err := uc.repo.GetMembership(ctx, chatID, actorID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.ErrNotChatMember
		}
		uc.logger.Error("failed to load membership", "op", "hush.ListMessages", "chat", chatID, "actor", actorID, "err", err)
		return nil, errors.Internal("failed to load membership")
	}
	if m.Status != model.MembershipAccepted {
		return nil, errors.ErrNotChatMember
	}

	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	msgs, err := uc.repo.ListMessages(ctx, chatID, limit)
	if err != nil {
		uc.logger.Error("failed to list messages", "op", "hush.ListMessages", "chat", chatID, "err", err)
		return nil, errors.Internal("failed to list messages")
	}

	members, err := uc.repo.ListMemberships(ctx, chatID)
	if err != nil {
		uc.logger.Error("failed to list memberships", "op", "hush.ListMessages", "chat", chatID, "err", err)
		return nil, errors.Internal("failed to list messages")
	}
	names := make(map[uuid.UUID]string, len(members))
	for _, member := range members {
		names[member.UserID] = member.DisplayName
	}

	out := make([]hush.MessageDTO, 0, len(msgs))
	for _, msg := range msgs {
		name := names[msg.UserID]
		if name == "" {
			// sender's membership snapshot is gone, fall back to a live
			// username lookup
			if u, err := uc.users.GetUserByID(ctx, msg.UserID); err == nil {
				name = u.Username
			}
		}
		out = append(out, hush.MessageDTO{
			ID:          msg.ID,
			ChatID:      msg.ChatID,
			UserID:      msg.UserID,
			DisplayName: name,
			Content:     msg.Content,
			CreatedAt:   msg.CreatedAt,
		})
	}
	return out, nil
}

func (uc *HushUsecase) List(ctx context.Context, actorID uuid.UUID) (*hush.HushListDTO, error) {
	chats, err := uc.repo.ListOpenChats(ctx)
	if err != nil {
		uc.logger.Error("failed to list chats", "op", "hush.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list chats")
	}

	chatIDs := make([]uuid.UUID, 0, len(chats))
	for _, chat := range chats {
		chatIDs = append(chatIDs, chat.ID)
	}
	members, err := uc.repo.ListMembershipsForChats(ctx, chatIDs)
	if err != nil {
		uc.logger.Error("failed to list memberships", "op", "hush.List", "actor", actorID, "err", err)
		return nil, errors.Internal("failed to list chats")
	}
	byChat := make(map[uuid.UUID][]model.HushMembership, len(chats))
	for _, m := range members {
		byChat[m.ChatID] = append(byChat[m.ChatID], m)
	}

	out := &hush.HushListDTO{
		Chats:        make([]hush.ChatSummaryDTO, 0, len(chats)),
		Invites:      []hush.MembershipDTO{},
		JoinRequests: []hush.MembershipDTO{},
	}

	for _, chat := range chats {
		chatMembers := byChat[chat.ID]

		labels := make([]string, 0, len(chatMembers))
		var own *hush.MembershipDTO
		canRequestJoin := true

		for _, m := range chatMembers {
			if m.Status.Visible() {
				labels = append(labels, m.DisplayName)
			}
			if m.UserID == actorID {
				dto := membershipDTO(m)
				own = &dto
				canRequestJoin = m.Status.Rejoinable()
				if m.Status == model.MembershipInvited {
					out.Invites = append(out.Invites, dto)
				}
			}
			if chat.CreatedBy == actorID && m.Status == model.MembershipRequested {
				out.JoinRequests = append(out.JoinRequests, membershipDTO(m))
			}
		}

		label := emptyChatLabel
		if len(labels) > 0 {
			label = strings.Join(labels, " + ")
		}

		out.Chats = append(out.Chats, hush.ChatSummaryDTO{
			ID:             chat.ID,
			CreatedBy:      chat.CreatedBy,
			Label:          label,
			Membership:     own,
			CanRequestJoin: canRequestJoin,
		})
	}
	return out, nil
}

func (uc *HushUsecase) getChat(ctx context.Context, op string, chatID uuid.UUID) (*model.HushChat, error) {
	chat, err := uc.repo.GetChat(ctx, chatID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("failed to load chat", "op", op, "chat", chatID, "err", err)
		return nil, errors.Internal("failed to load chat")
	}
	return chat, nil
}

func (uc *HushUsecase) getMembership(ctx context.Context, op string, chatID, userID uuid.UUID) (*model.HushMembership, error) {
	m, err := uc.repo.GetMembership(ctx, chatID, userID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.ErrMembershipNotFound
		}
		uc.logger.Error("failed to load membership", "op", op, "chat", chatID, "user", userID, "err", err)
		return nil, errors.Internal("failed to load membership")
	}
	return m, nil
}

// requireOwner loads the chat and verifies the actor holds an accepted
// owner membership in it.
func (uc *HushUsecase) requireOwner(ctx context.Context, op string, actorID, chatID uuid.UUID) (*model.HushChat, error) {
	chat, err := uc.getChat(ctx, op, chatID)
	if err != nil {
		return nil, err
	}

	m, err := uc.repo.GetMembership(ctx, chatID, actorID)
	if err != nil {
		if pkgErrors.Is(err, repository.ErrMembershipNotFound) {
			return nil, errors.ErrNotChatOwner
		}
		uc.logger.Error("failed to load membership", "op", op, "chat", chatID, "actor", actorID, "err", err)
		return nil, errors.Internal("failed to load membership")
	}
	if m.Role != model.RoleOwner || m.Status != model.MembershipAccepted {
		return nil, errors.ErrNotChatOwner
	}
	return chat, nil
}

func (uc *HushUsecase) resolveUser(ctx context.Context, op string, userID uuid.UUID) (*models.User, error) {
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		if pkgErrors.Is(err, userRepository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "op", op, "user", userID, "err", err)
		return nil, errors.Internal("failed to load user")
	}
	return u, nil
}

func membershipDTO(m model.HushMembership) hush.MembershipDTO {
	return hush.MembershipDTO{
		ChatID:      m.ChatID,
		UserID:      m.UserID,
		Role:        m.Role,
		Status:      m.Status,
		DisplayName: m.DisplayName,
	}
}
