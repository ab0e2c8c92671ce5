package services

import (
	"errors"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

const placeholderBio = "This user has not written a bio yet."

// UserProfile is a user profile with the viewer's relation flags.
type UserProfile struct {
	models.User
	IsFollowing bool `json:"is_following"`
	IsBlocked   bool `json:"is_blocked"`
}

// UserService handles registration, profile reads and the allow-listed
// partial profile update.
type UserService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
	blocks  repositories.BlockRepository
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, follows repositories.FollowRepository, blocks repositories.BlockRepository) *UserService {
	return &UserService{users: users, follows: follows, blocks: blocks}
}

// Register creates the user if the id is new, or returns the stored
// profile untouched. The bool reports whether a row was created.
func (s *UserService) Register(req *models.CreateUserRequest) (*models.User, bool, error) {
	existing, err := s.users.GetUserByID(req.UserID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	user := &models.User{
		UserID:   req.UserID,
		Username: req.Username,
		Picture:  req.Picture,
		Bio:      placeholderBio,
	}
	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, false, apperrors.Conflictf("username is already taken")
		}
		return nil, false, err
	}
	return user, true, nil
}

// Profile returns the named user's profile plus whether the viewer
// follows or has blocked them.
func (s *UserService) Profile(viewerID, username string) (*UserProfile, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("user does not exist")
		}
		return nil, err
	}

	isFollowing, err := s.follows.IsFollowing(viewerID, user.UserID)
	if err != nil {
		return nil, err
	}
	isBlocked, err := s.blocks.IsBlocked(viewerID, user.UserID)
	if err != nil {
		return nil, err
	}

	return &UserProfile{User: *user, IsFollowing: isFollowing, IsBlocked: isBlocked}, nil
}

// ListOthers returns every user except the viewer.
func (s *UserService) ListOthers(viewerID string) ([]models.User, error) {
	users, err := s.users.GetUsers(viewerID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// UpdateProfile writes the provided profile fields. The column map is
// built from a fixed allow-list; request keys never name columns.
func (s *UserService) UpdateProfile(userID string, req *models.UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Picture != nil {
		fields["picture"] = *req.Picture
	}
	if len(fields) == 0 {
		return apperrors.Validationf("no updatable fields provided")
	}

	if err := s.users.UpdateProfile(userID, fields); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return apperrors.Conflictf("username is already taken")
		}
		return err
	}
	return nil
}
