package repository

import (
	"context"
	"errors"

	"github.com/shoplite/storeapi/internal/model"
	"gorm.io/gorm"
)

// UserRepository extends the generic contract with user lookups.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error

	ByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	*Repository[model.User]
}

// NewUserRepository creates the user repository over db.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{Repository: NewRepository[model.User](db)}
}

func (r *userRepository) ByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, "email = ?", email)
}
