package repository

import (
	"context"
	"errors"

	"github.com/shoplite/storeapi/internal/model"
	"gorm.io/gorm"
)

// ErrCategoryInUse is returned when deleting a category that still has
// non-deleted products referencing it.
var ErrCategoryInUse = errors.New("category has products and cannot be deleted")

// CategoryRepository extends the generic contract with category queries.
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Category, error)
	GetAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Paginate(ctx context.Context, page, size int, orderBy string, query interface{}, args ...interface{}) ([]model.Category, int64, error)

	ByName(ctx context.Context, name string) (*model.Category, error)
	NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
	Delete(ctx context.Context, category *model.Category) error
}

type categoryRepository struct {
	*Repository[model.Category]
}

// NewCategoryRepository creates the category repository over db.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{Repository: NewRepository[model.Category](db)}
}

func (r *categoryRepository) ByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := r.DB().WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// NameExists checks name uniqueness among non-deleted categories.
func (r *categoryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	if excludeID != 0 {
		return r.Exists(ctx, "name = ? AND id != ?", name, excludeID)
	}
	return r.Exists(ctx, "name = ?", name)
}

// Delete soft-deletes the category unless non-deleted products still
// reference it, mirroring the restrict constraint on the foreign key.
func (r *categoryRepository) Delete(ctx context.Context, category *model.Category) error {
	var count int64
	err := r.DB().WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return r.Repository.Delete(ctx, category)
}
