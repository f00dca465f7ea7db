package direct

import (
	"time"

	"github.com/google/uuid"
)

// Note: DTOs travel from usecase to handler
type ChannelDTO struct {
	ID uuid.UUID

	// the other participant's profile
	ParticipantID uuid.UUID
	Username      string
	DisplayName   string
	Avatar        string

	UpdatedAt time.Time
}

type MessageDTO struct {
	ID        uuid.UUID
	ChannelID uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}
