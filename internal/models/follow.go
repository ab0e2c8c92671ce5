package models

import "time"

// Follow is a directed edge from the follower to the followee. The
// composite unique index is the authority on duplicates; handlers only
// pre-check for friendlier error messages.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followee;size:128"`
	FolloweeID string    `json:"followee_id" gorm:"index;uniqueIndex:idx_follower_followee;size:128"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowRequest addresses the followee either by id or by username;
// exactly one of the two fields must be set.
type FollowRequest struct {
	Followee         string `json:"followee,omitempty"`
	FolloweeUsername string `json:"followee_username,omitempty"`
}
