package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	SKU         string          `json:"sku" validate:"required,min=3,max=100,alphanumunicode"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  uint            `json:"category_id" validate:"required,gt=0"`
	IsActive    bool            `json:"is_active"`
}

// UpdateProductRequest is the payload for updating a product.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	SKU         string          `json:"sku" validate:"required,min=3,max=100,alphanumunicode"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  uint            `json:"category_id" validate:"required,gt=0"`
	IsActive    bool            `json:"is_active"`
}

// AdjustStockRequest is the payload for a stock adjustment. Delta may be
// negative; the resulting stock is clamped at zero.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ProductListParams are the query parameters accepted by the product list
// endpoint.
type ProductListParams struct {
	PageParams
	Search     string           `query:"search"`
	CategoryID uint             `query:"category_id"`
	MinPrice   *decimal.Decimal `query:"min_price"`
	MaxPrice   *decimal.Decimal `query:"max_price"`
	ActiveOnly bool             `query:"active_only"`
}

// ProductResponse is the product shape returned to clients.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
