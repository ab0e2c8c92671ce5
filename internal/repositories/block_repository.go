package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// BlockRepository defines the interface for block edge operations
type BlockRepository interface {
	CreateBlockWithCascade(block *models.Block) error
	DeleteBlock(blockerID, blockeeID string) error
	IsBlocked(blockerID, blockeeID string) (bool, error)
	GetBlockedIDs(blockerID string) ([]string, error)
}

// PostgresBlockRepository implements BlockRepository for PostgreSQL
type PostgresBlockRepository struct {
	db *gorm.DB
}

// NewPostgresBlockRepository creates a new PostgresBlockRepository
func NewPostgresBlockRepository(db *gorm.DB) *PostgresBlockRepository {
	return &PostgresBlockRepository{db: db}
}

// CreateBlockWithCascade inserts the block edge and removes any follow
// edge between the pair, in either direction, as one transaction. A
// block with a stale follow edge must never be observable.
func (r *PostgresBlockRepository) CreateBlockWithCascade(block *models.Block) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(block).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? AND followee_id = ?", block.BlockeeID, block.BlockerID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where("follower_id = ? AND followee_id = ?", block.BlockerID, block.BlockeeID).
			Delete(&models.Follow{}).Error
	})
	return apperrors.FromStore(err)
}

// DeleteBlock removes the block edge. It does not restore any follow
// edge the block cascade removed.
func (r *PostgresBlockRepository) DeleteBlock(blockerID, blockeeID string) error {
	res := r.db.Where("blocker_id = ? AND blockee_id = ?", blockerID, blockeeID).Delete(&models.Block{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("block relationship not found")
	}
	return nil
}

func (r *PostgresBlockRepository) IsBlocked(blockerID, blockeeID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Block{}).Where("blocker_id = ? AND blockee_id = ?", blockerID, blockeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresBlockRepository) GetBlockedIDs(blockerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Block{}).Where("blocker_id = ?", blockerID).Pluck("blockee_id", &ids).Error
	return ids, err
}
