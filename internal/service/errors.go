package service

import (
	"github.com/google/uuid"
	"github.com/subtrackr/subtrackr-api/internal/domain"
)

// parseUserID parses a user identifier, mapping parse failures to a domain
// validation error so the boundary reports 400 rather than 500.
func parseUserID(id string) (uuid.UUID, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "has invalid format", domain.ErrValidation)
	}
	return userID, nil
}
