package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// RetweetRepository defines the interface for retweet edge operations
type RetweetRepository interface {
	CreateRetweet(retweet *models.Retweet) error
	DeleteRetweet(userID string, postID uint) error
	HasUserRetweetedPost(userID string, postID uint) (bool, error)
	CountsByPostIDs(postIDs []uint) (map[uint]int64, error)
	RetweetedSet(userID string, postIDs []uint) (map[uint]bool, error)
}

// PostgresRetweetRepository implements RetweetRepository for PostgreSQL
type PostgresRetweetRepository struct {
	db *gorm.DB
}

// NewPostgresRetweetRepository creates a new PostgresRetweetRepository
func NewPostgresRetweetRepository(db *gorm.DB) *PostgresRetweetRepository {
	return &PostgresRetweetRepository{db: db}
}

func (r *PostgresRetweetRepository) CreateRetweet(retweet *models.Retweet) error {
	return apperrors.FromStore(r.db.Create(retweet).Error)
}

func (r *PostgresRetweetRepository) DeleteRetweet(userID string, postID uint) error {
	res := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Retweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("retweet not found")
	}
	return nil
}

func (r *PostgresRetweetRepository) HasUserRetweetedPost(userID string, postID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Retweet{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountsByPostIDs returns retweet counts per post. Posts nobody
// retweeted are absent from the map.
func (r *PostgresRetweetRepository) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PostID uint
		N      int64
	}
	err := r.db.Model(&models.Retweet{}).
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

// RetweetedSet returns which of the given posts the user has retweeted.
func (r *PostgresRetweetRepository) RetweetedSet(userID string, postIDs []uint) (map[uint]bool, error) {
	retweeted := make(map[uint]bool)
	if len(postIDs) == 0 {
		return retweeted, nil
	}
	var ids []uint
	err := r.db.Model(&models.Retweet{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		retweeted[id] = true
	}
	return retweeted, nil
}
