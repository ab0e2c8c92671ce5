package models

// CreateUploadRequest defines the request body for requesting a signed
// upload URL.
type CreateUploadRequest struct {
	ContentType string `json:"content_type" validate:"required"`
}
