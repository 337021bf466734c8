package services

import (
	"github.com/google/uuid"

	"travelling/internal/models/db_models"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID uuid.UUID
	Role   db_models.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == db_models.RoleAdmin
}

// Owns reports whether the actor may act on behalf of userID.
func (a Actor) Owns(userID uuid.UUID) bool {
	return a.IsAdmin() || (a.UserID != uuid.Nil && a.UserID == userID)
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
