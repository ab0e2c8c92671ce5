package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// EngagementHandler handles like/retweet HTTP requests and batched
// engagement counts.
type EngagementHandler struct {
	engagement *services.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagement *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagement: engagement}
}

// RegisterEngagementRoutes registers engagement routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.LikePost)
	g.DELETE("/posts/:post_id/likes", h.UnlikePost)
	g.POST("/posts/:post_id/retweets", h.RetweetPost)
	g.DELETE("/posts/:post_id/retweets", h.UnretweetPost)
	g.POST("/posts/counts", h.GetCounts)
}

func parsePostID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	return uint(id), nil
}

// LikePost handles liking a post
func (h *EngagementHandler) LikePost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.engagement.Like(userID, postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// UnlikePost handles unliking a post
func (h *EngagementHandler) UnlikePost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.engagement.Unlike(userID, postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": false}})
}

// RetweetPost handles retweeting a post
func (h *EngagementHandler) RetweetPost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.engagement.Retweet(userID, postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"retweeted": true}})
}

// UnretweetPost handles removing a retweet
func (h *EngagementHandler) UnretweetPost(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parsePostID(c)
	if err != nil {
		return err
	}

	if err := h.engagement.Unretweet(userID, postID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"retweeted": false}})
}

type countEntry struct {
	PostID uint  `json:"postid"`
	Count  int64 `json:"count"`
}

// countEntries flattens a sparse count map into a postid-ordered list.
// Posts with a zero count stay absent.
func countEntries(m map[uint]int64) []countEntry {
	entries := make([]countEntry, 0, len(m))
	for id, n := range m {
		entries = append(entries, countEntry{PostID: id, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].PostID < entries[j].PostID })
	return entries
}

// GetCounts returns like, retweet and reply counts for a batch of posts
func (h *EngagementHandler) GetCounts(c echo.Context) error {
	var req models.CountsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	counts, err := h.engagement.Counts(req.PostIDs)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"likes":          countEntries(counts.Likes),
			"retweets":       countEntries(counts.Retweets),
			"comment_counts": countEntries(counts.Replies),
		},
	})
}
