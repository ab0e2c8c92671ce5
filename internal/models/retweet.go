package models

import "time"

// Retweet records that a user retweeted a post. At most one row per
// pair.
type Retweet struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_retweet_user_post;size:128"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_retweet_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
