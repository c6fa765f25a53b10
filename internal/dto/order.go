package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest is one product line on an order creation request.
type OrderItemRequest struct {
	ProductID uint            `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" validate:"required,max=500"`
	BillingAddress  string             `json:"billing_address" validate:"required,max=500"`
	Notes           string             `json:"notes" validate:"max=2000"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the payload for moving an order through its
// status lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse is an order line as returned to clients.
type OrderItemResponse struct {
	ID         uint            `json:"id"`
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// OrderResponse is the order shape returned to clients.
type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          uint                `json:"user_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	BillingAddress  string              `json:"billing_address"`
	Notes           string              `json:"notes,omitempty"`
	OrderedAt       time.Time           `json:"ordered_at"`
	ShippedAt       *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	Items           []OrderItemResponse `json:"items"`
}
