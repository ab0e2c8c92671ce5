package services

import (
	"errors"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

// HomeFeedLimit caps the home feed page.
const HomeFeedLimit = 500

// TimelinePost is a post annotated with the viewer's engagement flags.
type TimelinePost struct {
	models.Post
	IsLiked     bool `json:"is_liked"`
	IsRetweeted bool `json:"is_retweeted"`
}

// TimelineService assembles viewer-specific feeds by joining posts
// against the follow, block and engagement edges.
type TimelineService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	likes    repositories.LikeRepository
	retweets repositories.RetweetRepository
	blocks   repositories.BlockRepository
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(
	users repositories.UserRepository,
	posts repositories.PostRepository,
	likes repositories.LikeRepository,
	retweets repositories.RetweetRepository,
	blocks repositories.BlockRepository,
) *TimelineService {
	return &TimelineService{
		users:    users,
		posts:    posts,
		likes:    likes,
		retweets: retweets,
		blocks:   blocks,
	}
}

// HomeFeed returns root posts authored by the viewer or by followed
// users, minus blocked authors, newest first, annotated with the
// viewer's like/retweet flags.
func (s *TimelineService) HomeFeed(viewerID string) ([]TimelinePost, error) {
	exists, err := s.users.Exists(viewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("user does not exist")
	}

	posts, err := s.posts.HomeFeed(viewerID, HomeFeedLimit)
	if err != nil {
		return nil, err
	}
	return s.annotate(viewerID, posts)
}

// Thread returns the replies to a post, minus blocked authors,
// annotated the same way as the home feed.
func (s *TimelineService) Thread(viewerID string, postID uint) ([]TimelinePost, error) {
	if _, err := s.posts.GetPostByID(postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("post does not exist")
		}
		return nil, err
	}

	posts, err := s.posts.Thread(viewerID, postID)
	if err != nil {
		return nil, err
	}
	return s.annotate(viewerID, posts)
}

// ProfileFeed returns the root posts of the named author, newest first,
// without engagement annotations. A viewer who has blocked the author
// gets an empty feed.
func (s *TimelineService) ProfileFeed(viewerID, username string) ([]models.Post, error) {
	author, err := s.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("user does not exist")
		}
		return nil, err
	}

	blocked, err := s.blocks.IsBlocked(viewerID, author.UserID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []models.Post{}, nil
	}

	posts, err := s.posts.RootPostsByAuthor(author.UserID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *TimelineService) annotate(viewerID string, posts []models.Post) ([]TimelinePost, error) {
	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.PostID
	}

	liked, err := s.likes.LikedSet(viewerID, ids)
	if err != nil {
		return nil, err
	}
	retweeted, err := s.retweets.RetweetedSet(viewerID, ids)
	if err != nil {
		return nil, err
	}

	timeline := make([]TimelinePost, len(posts))
	for i, p := range posts {
		timeline[i] = TimelinePost{
			Post:        p,
			IsLiked:     liked[p.PostID],
			IsRetweeted: retweeted[p.PostID],
		}
	}
	return timeline, nil
}
