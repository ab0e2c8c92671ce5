package models

import "time"

// Block is a directed edge from the blocker to the blockee. Creating a
// block removes any follow edge between the two users, in either
// direction, as one transaction.
type Block struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BlockerID string    `json:"blocker_id" gorm:"index;uniqueIndex:idx_blocker_blockee;size:128"`
	BlockeeID string    `json:"blockee_id" gorm:"index;uniqueIndex:idx_blocker_blockee;size:128"`
	CreatedAt time.Time `json:"created_at"`
}

// BlockRequest addresses the blockee either by id or by username.
type BlockRequest struct {
	Blockee         string `json:"blockee,omitempty"`
	BlockeeUsername string `json:"blockee_username,omitempty"`
}
