package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// statusRank orders the forward chain pending -> confirmed -> processing ->
// shipped -> delivered. Cancelled and refunded sit outside the chain.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    1,
	OrderStatusConfirmed:  2,
	OrderStatusProcessing: 3,
	OrderStatusShipped:    4,
	OrderStatusDelivered:  5,
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether s is an absorbing state. Delivered ends the
// forward chain; cancelled and refunded absorb from any non-terminal state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusRefunded
}

// CanTransitionTo reports whether an order in state s may move to next.
// The forward chain advances one step at a time; cancelled and refunded are
// reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled || next == OrderStatusRefunded {
		return true
	}
	return statusRank[next] == statusRank[s]+1
}

// Order represents a customer order
type Order struct {
	BaseModel
	OrderNumber     string          `json:"order_number" gorm:"type:varchar(50);index;not null"`
	UserID          uint            `json:"user_id" gorm:"index;not null"`
	User            *User           `json:"user,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);default:pending;index"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text"`
	BillingAddress  string          `json:"billing_address" gorm:"type:text"`
	Notes           string          `json:"notes,omitempty" gorm:"type:text"`
	OrderedAt       time.Time       `json:"ordered_at"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderItem is a single product line on an order. UnitPrice snapshots the
// product price at order time.
type OrderItem struct {
	BaseModel
	OrderID    uint            `json:"order_id" gorm:"index;not null"`
	ProductID  uint            `json:"product_id" gorm:"index;not null"`
	Product    *Product        `json:"product,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);default:0"`
	FinalPrice decimal.Decimal `json:"final_price" gorm:"type:decimal(12,2);not null"`
}
