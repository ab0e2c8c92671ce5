package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followeeID string) error
	IsFollowing(followerID, followeeID string) (bool, error)
	GetFolloweeIDs(followerID string) ([]string, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return apperrors.FromStore(r.db.Create(follow).Error)
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, followeeID string) error {
	res := r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("follow relationship not found")
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFolloweeIDs(followerID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", followerID).Pluck("followee_id", &ids).Error
	return ids, err
}
