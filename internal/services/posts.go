package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/repositories"
)

// PostService owns post creation and deletion, including the content
// length limit and reply threading.
type PostService struct {
	users repositories.UserRepository
	posts repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(users repositories.UserRepository, posts repositories.PostRepository) *PostService {
	return &PostService{users: users, posts: posts}
}

// CreatePost validates and stores a new post. The length limit is
// enforced here, before anything touches the store, regardless of what
// transport-level validation already ran.
func (s *PostService) CreatePost(authorID string, req *models.CreatePostRequest) (*models.Post, error) {
	if req.TextContent == "" {
		return nil, apperrors.Validationf("textcontent missing")
	}
	if utf8.RuneCountInString(req.TextContent) > models.MaxPostTextLen {
		return nil, apperrors.Validationf("text content exceeds %d characters", models.MaxPostTextLen)
	}

	exists, err := s.users.Exists(authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFoundf("user does not exist")
	}

	if req.ParentPostID != nil {
		if _, err := s.posts.GetPostByID(*req.ParentPostID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NotFoundf("parent post does not exist")
			}
			return nil, err
		}
	}

	post := &models.Post{
		UserID:       authorID,
		TextContent:  req.TextContent,
		ImageFileKey: req.ImageFileKey,
		ParentPostID: req.ParentPostID,
		DatePosted:   time.Now().UTC(),
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost fetches a post by id.
func (s *PostService) GetPost(id uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("post does not exist")
		}
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post together with its engagement edges and
// replies.
func (s *PostService) DeletePost(id uint) error {
	return s.posts.DeletePostCascade(id)
}
