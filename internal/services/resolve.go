package services

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

// UserRef addresses a user either by id or by username. Several entry
// points receive a username (the caller knows who they are looking at,
// not their id), so resolution to exactly one user happens here, before
// any invariant check.
type UserRef struct {
	UserID   string
	Username string
}

// ByID builds a UserRef from a userid.
func ByID(id string) UserRef { return UserRef{UserID: id} }

// ByUsername builds a UserRef from a username.
func ByUsername(name string) UserRef { return UserRef{Username: name} }

type userResolver struct {
	users repositories.UserRepository
}

func (r userResolver) resolve(ref UserRef) (*models.User, error) {
	switch {
	case ref.UserID != "":
		return r.users.GetUserByID(ref.UserID)
	case ref.Username != "":
		return r.users.GetUserByUsername(ref.Username)
	default:
		return nil, apperrors.Validationf("user reference missing")
	}
}
