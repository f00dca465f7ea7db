package touch

import (
	"time"

	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
)

// Note: DTOs travel from usecase to handler
type RelationDTO struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	RequestedID uuid.UUID
	Status      model.RelationStatus
}

type ContactDTO struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Avatar      string
	RelationID  uuid.UUID
}

type IncomingRequestDTO struct {
	RelationID  uuid.UUID
	RequesterID uuid.UUID
	Username    string
	DisplayName string
	Avatar      string
	RequestedAt time.Time
}

type TouchListDTO struct {
	InTouch  []ContactDTO
	Incoming []IncomingRequestDTO
}
