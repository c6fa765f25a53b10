package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLowStockThreshold is used when a caller does not supply one.
const DefaultLowStockThreshold = 10

// ProductFilter narrows a paginated product listing. Zero values mean "no
// filter" for the corresponding field.
type ProductFilter struct {
	Search     string
	CategoryID uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	ActiveOnly bool
}

// ProductStatistics is the aggregate snapshot over non-deleted products.
type ProductStatistics struct {
	TotalProducts    int64           `json:"total_products"`
	ActiveProducts   int64           `json:"active_products"`
	LowStockProducts int64           `json:"low_stock_products"`
	InventoryValue   decimal.Decimal `json:"inventory_value"`
	AveragePrice     decimal.Decimal `json:"average_price"`
}

// ProductRepository extends the generic contract with product-specific
// queries.
type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	GetAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, product *model.Product) error
	Count(ctx context.Context, query interface{}, args ...interface{}) (int64, error)
	Paginate(ctx context.Context, page, size int, orderBy string, query interface{}, args ...interface{}) ([]model.Product, int64, error)

	List(ctx context.Context, filter ProductFilter, page, size int) ([]model.Product, int64, error)
	ByCategory(ctx context.Context, categoryID uint) ([]model.Product, error)
	ActiveOnly(ctx context.Context) ([]model.Product, error)
	LowStock(ctx context.Context, threshold int) ([]model.Product, error)
	Search(ctx context.Context, term string) ([]model.Product, error)
	PriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Product, error)
	BySKU(ctx context.Context, sku string) (*model.Product, error)
	SKUExists(ctx context.Context, sku string, excludeID uint) (bool, error)
	AdjustStock(ctx context.Context, id uint, delta int) (*model.Product, error)
	Statistics(ctx context.Context) (*ProductStatistics, error)
}

type productRepository struct {
	*Repository[model.Product]
}

// NewProductRepository creates the product repository over db.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{Repository: NewRepository[model.Product](db)}
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter, page, size int) ([]model.Product, int64, error) {
	defer prometheus.TrackDBOperation("product_list")(time.Now())

	var products []model.Product
	var total int64

	q := r.DB().WithContext(ctx).Model(&model.Product{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", pattern, pattern, pattern)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset((page - 1) * size).Limit(size).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) ByCategory(ctx context.Context, categoryID uint) ([]model.Product, error) {
	return r.Find(ctx, "category_id = ?", categoryID)
}

func (r *productRepository) ActiveOnly(ctx context.Context) ([]model.Product, error) {
	return r.Find(ctx, "is_active = ?", true)
}

func (r *productRepository) LowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return r.Find(ctx, "stock <= ?", threshold)
}

func (r *productRepository) Search(ctx context.Context, term string) ([]model.Product, error) {
	pattern := "%" + term + "%"
	return r.Find(ctx, "name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", pattern, pattern, pattern)
}

func (r *productRepository) PriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Product, error) {
	var products []model.Product
	err := r.DB().WithContext(ctx).
		Where("price >= ? AND price <= ?", min, max).
		Order("price ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) BySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	err := r.DB().WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// SKUExists checks SKU uniqueness among non-deleted products. excludeID lets
// an update skip the product being updated.
func (r *productRepository) SKUExists(ctx context.Context, sku string, excludeID uint) (bool, error) {
	if excludeID != 0 {
		return r.Exists(ctx, "sku = ? AND id != ?", sku, excludeID)
	}
	return r.Exists(ctx, "sku = ?", sku)
}

// AdjustStock applies stock = max(0, stock+delta). Read-modify-write with no
// concurrency token; concurrent adjustments are last-write-wins.
func (r *productRepository) AdjustStock(ctx context.Context, id uint, delta int) (*model.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Stock = model.AdjustedStock(product.Stock, delta)

	if err := r.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Statistics(ctx context.Context) (*ProductStatistics, error) {
	defer prometheus.TrackDBOperation("product_statistics")(time.Now())

	var stats ProductStatistics
	err := r.DB().WithContext(ctx).Model(&model.Product{}).
		Select(`COUNT(*) AS total_products,
			COUNT(*) FILTER (WHERE is_active) AS active_products,
			COUNT(*) FILTER (WHERE stock <= ?) AS low_stock_products,
			COALESCE(SUM(price * stock), 0) AS inventory_value,
			COALESCE(AVG(price), 0) AS average_price`, DefaultLowStockThreshold).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
