package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like edge operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	DeleteLike(userID string, postID uint) error
	HasUserLikedPost(userID string, postID uint) (bool, error)
	CountsByPostIDs(postIDs []uint) (map[uint]int64, error)
	LikedSet(userID string, postIDs []uint) (map[uint]bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return apperrors.FromStore(r.db.Create(like).Error)
}

func (r *PostgresLikeRepository) DeleteLike(userID string, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("like not found")
	}
	return nil
}

func (r *PostgresLikeRepository) HasUserLikedPost(userID string, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountsByPostIDs returns like counts per post. Posts nobody liked are
// absent from the map.
func (r *PostgresLikeRepository) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PostID uint
		N      int64
	}
	err := r.db.Model(&models.Like{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}

// LikedSet returns which of the given posts the user has liked.
func (r *PostgresLikeRepository) LikedSet(userID string, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if len(postIDs) == 0 {
		return liked, nil
	}
	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
