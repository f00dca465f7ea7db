package user

import (
	"github.com/google/uuid"
)

// Note: DTOs travel from usecase to handler
type UserProfileDTO struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Avatar      string
}
