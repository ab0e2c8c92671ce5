package repositories

import (
	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers(excludeID string) ([]models.User, error)
	UpdateProfile(id string, fields map[string]interface{}) error
	Exists(id string) (bool, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return apperrors.FromStore(r.db.Create(user).Error)
}

func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, apperrors.FromStore(err)
	}
	return &user, nil
}

// GetUsers retrieves every user except the given one.
func (r *PostgresUserRepository) GetUsers(excludeID string) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("user_id <> ?", excludeID).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile writes the given column/value pairs for a user. Callers
// build the map from a fixed allow-list; raw request keys never reach
// this method.
func (r *PostgresUserRepository) UpdateProfile(id string, fields map[string]interface{}) error {
	res := r.db.Model(&models.User{}).Where("user_id = ?", id).Updates(fields)
	if res.Error != nil {
		return apperrors.FromStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("user does not exist")
	}
	return nil
}

func (r *PostgresUserRepository) Exists(id string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
