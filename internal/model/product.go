package model

import (
	"github.com/shopspring/decimal"
)

// Product represents the product master data
type Product struct {
	BaseModel
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text"`
	SKU         string          `json:"sku" gorm:"type:varchar(100);index;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int             `json:"stock" gorm:"default:0"`
	CategoryID  uint            `json:"category_id" gorm:"index;not null"`
	Category    *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
}

// AdjustedStock returns stock+delta clamped at zero. Stock never goes
// negative regardless of how large a negative delta is.
func AdjustedStock(stock, delta int) int {
	if adjusted := stock + delta; adjusted > 0 {
		return adjusted
	}
	return 0
}

// Category represents a product category
type Category struct {
	BaseModel
	Name        string    `json:"name" gorm:"type:varchar(100);index;not null"`
	Description string    `json:"description" gorm:"type:text"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	Products    []Product `json:"products,omitempty"`
}
