package services

import (
	"errors"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

// EngagementService owns the like and retweet edges: idempotency per
// pair, the block restriction on retweets, and batched counts.
type EngagementService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	likes    repositories.LikeRepository
	retweets repositories.RetweetRepository
	blocks   repositories.BlockRepository
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	likes repositories.LikeRepository,
	retweets repositories.RetweetRepository,
	blocks repositories.BlockRepository,
) *EngagementService {
	return &EngagementService{
		users:    users,
		posts:    posts,
		likes:    likes,
		retweets: retweets,
		blocks:   blocks,
	}
}

// EngagementCounts holds sparse per-post counts. A post absent from a
// map has zero of that kind; callers must treat absence as zero.
type EngagementCounts struct {
	Likes    map[uint]int64
	Retweets map[uint]int64
	Replies  map[uint]int64
}

// Like adds a like edge for the user on the post.
func (s *EngagementService) Like(userID string, postID uint) error {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("post does not exist")
		}
		return err
	}

	liked, err := s.likes.HasUserLikedPost(userID, postID)
	if err != nil {
		return err
	}
	if liked {
		return apperrors.Conflictf("post already liked by this user")
	}

	return s.likes.CreateLike(&models.Like{UserID: userID, PostID: postID})
}

// Unlike removes the like edge; a missing edge is a not-found error.
func (s *EngagementService) Unlike(userID string, postID uint) error {
	return s.likes.DeleteLike(userID, postID)
}

// Retweet adds a retweet edge. A user the post's author has blocked
// cannot retweet the post.
func (s *EngagementService) Retweet(userID string, postID uint) error {
	exists, err := s.users.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundf("user does not exist")
	}

	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("post does not exist")
		}
		return err
	}

	blocked, err := s.blocks.IsBlocked(post.UserID, userID)
	if err != nil {
		return err
	}
	if blocked {
		return apperrors.Forbiddenf("cannot retweet: you are blocked by the post author")
	}

	retweeted, err := s.retweets.HasUserRetweetedPost(userID, postID)
	if err != nil {
		return err
	}
	if retweeted {
		return apperrors.Conflictf("post already retweeted by this user")
	}

	return s.retweets.CreateRetweet(&models.Retweet{UserID: userID, PostID: postID})
}

// Unretweet removes the retweet edge; a missing edge is a not-found
// error.
func (s *EngagementService) Unretweet(userID string, postID uint) error {
	return s.retweets.DeleteRetweet(userID, postID)
}

// Counts returns like, retweet and reply counts for the given posts.
// Empty input yields empty maps, not an error.
func (s *EngagementService) Counts(postIDs []uint) (*EngagementCounts, error) {
	likes, err := s.likes.CountsByPostIDs(postIDs)
	if err != nil {
		return nil, err
	}
	retweets, err := s.retweets.CountsByPostIDs(postIDs)
	if err != nil {
		return nil, err
	}
	replies, err := s.posts.ReplyCounts(postIDs)
	if err != nil {
		return nil, err
	}
	return &EngagementCounts{Likes: likes, Retweets: retweets, Replies: replies}, nil
}
