package models

import "time"

// User is a registered account. The primary key comes from the identity
// provider at registration time, so it is a string and never generated
// by this service.
type User struct {
	UserID    string    `json:"userid" gorm:"primaryKey;size:128"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:60"`
	Bio       string    `json:"bio"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUserRequest defines the request body for registering a user.
// Registration is idempotent: posting an already-known userid returns
// the stored profile untouched.
type CreateUserRequest struct {
	UserID   string `json:"userid" validate:"required"`
	Username string `json:"username" validate:"required,min=1,max=60"`
	Picture  string `json:"picture" validate:"required"`
}

// UpdateProfileRequest carries the mutable profile fields. Only fields
// present in the body are written; everything else is left alone.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=60"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=280"`
	Picture  *string `json:"picture,omitempty"`
}
