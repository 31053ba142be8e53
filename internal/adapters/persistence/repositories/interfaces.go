package repositories

import (
	"context"

	"vvms/internal/adapters/persistence/models"
	"vvms/internal/core/domain"
)

// ViolationRepository defines violation repository interface
type ViolationRepository interface {
	Create(ctx context.Context, violation *models.Violation) error
	GetByID(ctx context.Context, id uint) (*models.Violation, error)
	GetAll(ctx context.Context) ([]*models.Violation, error)
	List(ctx context.Context, offset, limit int) ([]*models.Violation, int64, error)
	Search(ctx context.Context, term string) ([]*models.Violation, error)
	GetByStatus(ctx context.Context, status string) ([]*models.Violation, error)
	Update(ctx context.Context, violation *models.Violation) error
	Delete(ctx context.Context, id uint) (bool, error)
	Statistics(ctx context.Context) (*domain.Statistics, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}
