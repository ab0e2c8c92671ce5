package handlers

import (
	"net/http"

	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// TimelineHandler handles feed HTTP requests: the home feed, reply
// threads and profile feeds.
type TimelineHandler struct {
	timeline *services.TimelineService
}

// NewTimelineHandler creates a new TimelineHandler
func NewTimelineHandler(timeline *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{timeline: timeline}
}

// RegisterTimelineRoutes registers timeline routes
func (h *TimelineHandler) RegisterTimelineRoutes(g *echo.Group) {
	g.GET("/feed", h.GetHomeFeed)
	g.GET("/posts/:post_id/thread", h.GetThread)
	g.GET("/users/:username/posts", h.GetProfileFeed)
}

// GetHomeFeed returns the viewer's home feed
func (h *TimelineHandler) GetHomeFeed(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	posts, err := h.timeline.HomeFeed(userID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}

// GetThread returns the replies to a post
func (h *TimelineHandler) GetThread(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	posts, err := h.timeline.Thread(userID, postID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}

// GetProfileFeed returns the root posts of the named user
func (h *TimelineHandler) GetProfileFeed(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	posts, err := h.timeline.ProfileFeed(userID, c.Param("username"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": posts}})
}
