package repository

import (
	"context"
	"errors"

	"github.com/shoplite/storeapi/internal/model"
	"gorm.io/gorm"
)

// OrderRepository extends the generic contract with order queries. Reads
// preload the order items so handlers can return complete orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	Update(ctx context.Context, order *model.Order) error
	Paginate(ctx context.Context, page, size int, orderBy string, query interface{}, args ...interface{}) ([]model.Order, int64, error)

	ByUser(ctx context.Context, userID uint) ([]model.Order, error)
	ByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	ByOrderNumber(ctx context.Context, number string) (*model.Order, error)
	OrderNumberExists(ctx context.Context, number string) (bool, error)
}

type orderRepository struct {
	*Repository[model.Order]
}

// NewOrderRepository creates the order repository over db.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{Repository: NewRepository[model.Order](db)}
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.DB().WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB().WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("ordered_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return r.Find(ctx, "status = ?", status)
}

func (r *orderRepository) ByOrderNumber(ctx context.Context, number string) (*model.Order, error) {
	var order model.Order
	err := r.DB().WithContext(ctx).Preload("Items").
		Where("order_number = ?", number).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	return r.Exists(ctx, "order_number = ?", number)
}
