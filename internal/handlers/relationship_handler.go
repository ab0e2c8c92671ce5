package handlers

import (
	"net/http"

	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RelationshipHandler handles follow/unfollow/block/unblock HTTP
// requests. The target user may be addressed by id or by username.
type RelationshipHandler struct {
	relationships *services.RelationshipService
}

// NewRelationshipHandler creates a new RelationshipHandler
func NewRelationshipHandler(relationships *services.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationships: relationships}
}

// RegisterRelationshipRoutes registers relationship routes
func (h *RelationshipHandler) RegisterRelationshipRoutes(g *echo.Group) {
	g.POST("/follow", h.Follow)
	g.POST("/unfollow", h.Unfollow)
	g.POST("/block", h.Block)
	g.POST("/unblock", h.Unblock)
}

// Follow follows a user
func (h *RelationshipHandler) Follow(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ref := services.UserRef{UserID: req.Followee, Username: req.FolloweeUsername}
	if err := h.relationships.Follow(userID, ref); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": true}})
}

// Unfollow unfollows a user
func (h *RelationshipHandler) Unfollow(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ref := services.UserRef{UserID: req.Followee, Username: req.FolloweeUsername}
	if err := h.relationships.Unfollow(userID, ref); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"following": false}})
}

// Block blocks a user and severs any follow relationship with them
func (h *RelationshipHandler) Block(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ref := services.UserRef{UserID: req.Blockee, Username: req.BlockeeUsername}
	if err := h.relationships.Block(userID, ref); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"blocked": true}})
}

// Unblock unblocks a user
func (h *RelationshipHandler) Unblock(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	ref := services.UserRef{UserID: req.Blockee, Username: req.BlockeeUsername}
	if err := h.relationships.Unblock(userID, ref); err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"blocked": false}})
}
