package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/jdelgad07/twitterclone/backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

const uploadURLTTL = 15 * time.Minute

// UploadHandler issues signed upload URLs. The returned file key is
// what callers later pass around as an image reference; nothing in the
// system interprets its contents.
type UploadHandler struct {
	uploads *storage.Client
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploads *storage.Client) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// RegisterUploadRoutes registers upload routes
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.CreateUploadURL)
}

// CreateUploadURL returns a signed PUT URL and the object key
func (h *UploadHandler) CreateUploadURL(c echo.Context) error {
	userID := viewerID(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("images/%s/%s", userID, uuid.NewString())
	url, err := h.uploads.SignUploadURL(fileKey, req.ContentType, uploadURLTTL)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"upload_url": url, "file_key": fileKey},
	})
}
