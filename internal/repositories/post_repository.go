package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	DeletePostCascade(id uint) error
	HomeFeed(viewerID string, limit int) ([]models.Post, error)
	Thread(viewerID string, parentID uint) ([]models.Post, error)
	RootPostsByAuthor(authorID string) ([]models.Post, error)
	ReplyCounts(postIDs []uint) (map[uint]int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return apperrors.FromStore(r.db.Create(post).Error)
}

func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("post_id = ?", id).First(&post).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return &post, nil
}

// DeletePostCascade removes the post along with its likes, retweets and
// replies (recursively, so no thread is left pointing at a deleted
// parent), as one transaction.
func (r *PostgresPostRepository) DeletePostCascade(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&models.Post{}).Where("parent_post_id IN ?", frontier).
				Pluck("post_id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		if err := tx.Where("post_id IN ?", ids).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id IN ?", ids).Delete(&models.Retweet{}).Error; err != nil {
			return err
		}
		res := tx.Where("post_id IN ?", ids).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NotFoundf("post does not exist")
		}
		return nil
	})
	return apperrors.FromStore(err)
}

// HomeFeed returns root posts authored by the viewer or by anyone the
// viewer follows, minus authors the viewer has blocked, newest first.
// Post id breaks timestamp ties so pagination stays stable.
func (r *PostgresPostRepository) HomeFeed(viewerID string, limit int) ([]models.Post, error) {
	followees := r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", viewerID)
	blocked := r.db.Model(&models.Block{}).Select("blockee_id").Where("blocker_id = ?", viewerID)

	var posts []models.Post
	err := r.db.
		Where("parent_post_id IS NULL").
		Where("user_id = ? OR user_id IN (?)", viewerID, followees).
		Where("user_id NOT IN (?)", blocked).
		Order("date_posted DESC, post_id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Thread returns the replies to a post, minus authors the viewer has
// blocked, newest first.
func (r *PostgresPostRepository) Thread(viewerID string, parentID uint) ([]models.Post, error) {
	blocked := r.db.Model(&models.Block{}).Select("blockee_id").Where("blocker_id = ?", viewerID)

	var posts []models.Post
	err := r.db.
		Where("parent_post_id = ?", parentID).
		Where("user_id NOT IN (?)", blocked).
		Order("date_posted DESC, post_id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostgresPostRepository) RootPostsByAuthor(authorID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Where("user_id = ? AND parent_post_id IS NULL", authorID).
		Order("date_posted DESC, post_id DESC").
		Find(&posts).Error
	return posts, err
}

// ReplyCounts returns the number of direct replies per post. Posts with
// no replies are simply absent from the map.
func (r *PostgresPostRepository) ReplyCounts(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PostID uint
		N      int64
	}
	err := r.db.Model(&models.Post{}).
		Select("parent_post_id AS post_id, COUNT(*) AS n").
		Where("parent_post_id IN ?", postIDs).
		Group("parent_post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.N
	}
	return counts, nil
}
