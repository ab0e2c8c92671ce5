package services

import (
	"errors"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

// RelationshipService owns the follow and block edges and the
// invariants between them: no self edges, at most one edge per pair,
// and block dominance (a block removes and prevents follows between the
// pair).
type RelationshipService struct {
	userResolver
	follows repositories.FollowRepository
	blocks  repositories.BlockRepository
}

// NewRelationshipService creates a new RelationshipService
func NewRelationshipService(users repositories.UserRepository, follows repositories.FollowRepository, blocks repositories.BlockRepository) *RelationshipService {
	return &RelationshipService{
		userResolver: userResolver{users: users},
		follows:      follows,
		blocks:       blocks,
	}
}

// Follow adds a follow edge from the follower to the referenced user.
func (s *RelationshipService) Follow(followerID string, followee UserRef) error {
	follower, err := s.users.GetUserByID(followerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("follower user does not exist")
		}
		return err
	}

	target, err := s.resolve(followee)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("followee user does not exist")
		}
		return err
	}

	if follower.UserID == target.UserID {
		return apperrors.Validationf("users cannot follow themselves")
	}

	// Pre-checks give precise errors; the unique index still backstops
	// concurrent duplicates.
	following, err := s.follows.IsFollowing(follower.UserID, target.UserID)
	if err != nil {
		return err
	}
	if following {
		return apperrors.Conflictf("already following this user")
	}

	blocked, err := s.blocks.IsBlocked(target.UserID, follower.UserID)
	if err != nil {
		return err
	}
	if blocked {
		return apperrors.Forbiddenf("cannot follow user: you have been blocked")
	}

	return s.follows.CreateFollow(&models.Follow{
		FollowerID: follower.UserID,
		FolloweeID: target.UserID,
	})
}

// Unfollow removes the follow edge. Removing an edge that does not
// exist is a not-found error, never a silent success.
func (s *RelationshipService) Unfollow(followerID string, followee UserRef) error {
	target, err := s.resolve(followee)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("followee user does not exist")
		}
		return err
	}
	return s.follows.DeleteFollow(followerID, target.UserID)
}

// Block adds a block edge and removes any follow edge between the pair
// in either direction, atomically.
func (s *RelationshipService) Block(blockerID string, blockee UserRef) error {
	blocker, err := s.users.GetUserByID(blockerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("blocker user does not exist")
		}
		return err
	}

	target, err := s.resolve(blockee)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("blockee user does not exist")
		}
		return err
	}

	if blocker.UserID == target.UserID {
		return apperrors.Validationf("users cannot block themselves")
	}

	blocked, err := s.blocks.IsBlocked(blocker.UserID, target.UserID)
	if err != nil {
		return err
	}
	if blocked {
		return apperrors.Conflictf("user is already blocked")
	}

	return s.blocks.CreateBlockWithCascade(&models.Block{
		BlockerID: blocker.UserID,
		BlockeeID: target.UserID,
	})
}

// Unblock removes the block edge. Follow edges removed by the block are
// not restored.
func (s *RelationshipService) Unblock(blockerID string, blockee UserRef) error {
	target, err := s.resolve(blockee)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("blockee user does not exist")
		}
		return err
	}
	return s.blocks.DeleteBlock(blockerID, target.UserID)
}
