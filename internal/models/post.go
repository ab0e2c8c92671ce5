package models

import "time"

// MaxPostTextLen is the hard limit on post text, counted in runes.
const MaxPostTextLen = 500

// Post is a tweet. A nil ParentPostID means a root post; a non-nil one
// makes the post a reply in the parent's thread. ImageFileKey is an
// opaque object-storage key issued by the upload endpoint.
type Post struct {
	PostID       uint      `json:"postid" gorm:"primaryKey"`
	UserID       string    `json:"userid" gorm:"index;size:128"`
	TextContent  string    `json:"textcontent" gorm:"size:500"`
	ImageFileKey *string   `json:"image_file_key,omitempty"`
	ParentPostID *uint     `json:"parent_postid,omitempty" gorm:"index"`
	DatePosted   time.Time `json:"dateposted" gorm:"index"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	TextContent  string  `json:"textcontent" validate:"required,max=500"`
	ImageFileKey *string `json:"image_file_key,omitempty"`
	ParentPostID *uint   `json:"parent_postid,omitempty"`
}
