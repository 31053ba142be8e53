package repositories

import (
	"context"

	"vvms/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository stores officer and admin accounts. Username and email are
// both unique-indexed, so lookups here never page or order.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Take(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername resolves the account a login attempt names.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Take(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameTaken reports whether an account already claimed the username.
func (r *userRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.taken(ctx, "username", username)
}

// EmailTaken reports whether an account already claimed the email.
func (r *userRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.taken(ctx, "email", email)
}

func (r *userRepository) taken(ctx context.Context, column, value string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(column+" = ?", value).
		Count(&n).Error
	return n > 0, err
}
