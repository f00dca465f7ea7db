package hush

import (
	"time"

	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
)

// Note: DTOs travel from usecase to handler
type ChatDTO struct {
	ID        uuid.UUID
	CreatedBy uuid.UUID
	Status    model.ChatStatus
	CreatedAt time.Time
}

type MembershipDTO struct {
	ChatID      uuid.UUID
	UserID      uuid.UUID
	Role        model.MembershipRole
	Status      model.MembershipStatus
	DisplayName string
}

type MessageDTO struct {
	ID          uuid.UUID
	ChatID      uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	Content     string
	CreatedAt   time.Time
}

type ChatSummaryDTO struct {
	ID        uuid.UUID
	CreatedBy uuid.UUID
	Label     string

	// Membership is the actor's own row, nil when they have none
	Membership *MembershipDTO

	CanRequestJoin bool
}

type HushListDTO struct {
	Chats []ChatSummaryDTO

	// Invites addressed to the actor
	Invites []MembershipDTO

	// JoinRequests pending on chats the actor created
	JoinRequests []MembershipDTO
}
