package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shoplite/storeapi/prometheus"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the lookup. Soft-deleted rows
// count as not found.
var ErrNotFound = errors.New("record not found")

// Repository is the generic data-access layer shared by every entity. All
// reads run under GORM's soft-delete scope, so deleted rows never surface,
// and Delete issues a soft delete rather than removing the row.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a generic repository over db.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying handle for entity-specific queries.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// GetByID fetches a single entity by primary key.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// GetAll returns every non-deleted entity.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Find returns entities matching the given condition.
func (r *Repository[T]) Find(ctx context.Context, query interface{}, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Create inserts the entity.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update saves all fields of the entity, refreshing its update timestamp.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete soft-deletes the entity. The row stays in the table with its
// deleted_at column set.
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	result := r.db.WithContext(ctx).Delete(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether any non-deleted entity matches the condition.
func (r *Repository[T]) Exists(ctx context.Context, query interface{}, args ...interface{}) (bool, error) {
	var count int64
	var entity T
	err := r.db.WithContext(ctx).Model(&entity).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of non-deleted entities matching the condition,
// or all of them when no condition is given.
func (r *Repository[T]) Count(ctx context.Context, query interface{}, args ...interface{}) (int64, error) {
	var count int64
	var entity T
	q := r.db.WithContext(ctx).Model(&entity)
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Paginate returns one page of entities plus the total match count before
// pagination. Pages are 1-indexed; page and size validation is the caller's
// responsibility. Ordering defaults to the primary key.
func (r *Repository[T]) Paginate(ctx context.Context, page, size int, orderBy string, query interface{}, args ...interface{}) ([]T, int64, error) {
	defer prometheus.TrackDBOperation("paginate")(time.Now())

	var entities []T
	var total int64
	var entity T

	q := r.db.WithContext(ctx).Model(&entity)
	if query != nil {
		q = q.Where(query, args...)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if orderBy == "" {
		orderBy = "id"
	}
	err := q.Order(orderBy).Offset((page - 1) * size).Limit(size).Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
