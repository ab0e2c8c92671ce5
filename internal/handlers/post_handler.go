package handlers

import (
	"net/http"

	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles post creation, retrieval and deletion.
type PostHandler struct {
	posts *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// RegisterPostRoutes registers post routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:post_id", h.GetPost)
	g.DELETE("/posts/:post_id", h.DeletePost)
}

// CreatePost creates a new post or reply
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.posts.CreatePost(userID, &req)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// GetPost retrieves a single post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	post, err := h.posts.GetPost(postID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// DeletePost deletes a post together with its engagement and replies
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.posts.DeletePost(postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
