package models

import "time"

// Like records that a user liked a post. At most one row per pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_post;size:128"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time `json:"created_at"`
}

// CountsRequest defines the request body for batched engagement counts.
// An empty postids list is valid and yields empty result sets.
type CountsRequest struct {
	PostIDs []uint `json:"postids"`
}
