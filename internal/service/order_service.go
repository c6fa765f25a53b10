package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/mapper"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shoplite/storeapi/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderService orchestrates order placement and the status lifecycle.
type OrderService interface {
	List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.OrderResponse], error)
	GetByID(ctx context.Context, id uint) (dto.OrderResponse, error)
	GetByOrderNumber(ctx context.Context, number string) (dto.OrderResponse, error)
	ByUser(ctx context.Context, userID uint) ([]dto.OrderResponse, error)
	ByStatus(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error)
	Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderService creates the order service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) OrderService {
	return &orderService{orders: orders, products: products}
}

func (s *orderService) List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.OrderResponse], error) {
	log := logger.FromContext(ctx)
	params.Normalize()

	orders, total, err := s.orders.Paginate(ctx, params.Page, params.PageSize, "ordered_at DESC", nil)
	if err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		prometheus.OrderOperationsCounter.WithLabelValues("list", "error").Inc()
		return dto.PaginatedResponse[dto.OrderResponse]{}, err
	}

	prometheus.OrderOperationsCounter.WithLabelValues("list", "success").Inc()
	return dto.NewPaginatedResponse(mapper.ToOrderResponses(orders), total, params.Page, params.PageSize), nil
}

func (s *orderService) GetByID(ctx context.Context, id uint) (dto.OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warn("Order not found", zap.Uint("order_id", id), zap.Error(err))
		return dto.OrderResponse{}, err
	}
	return mapper.ToOrderResponse(order), nil
}

func (s *orderService) GetByOrderNumber(ctx context.Context, number string) (dto.OrderResponse, error) {
	order, err := s.orders.ByOrderNumber(ctx, number)
	if err != nil {
		logger.FromContext(ctx).Warn("Order not found by number",
			zap.String("order_number", number), zap.Error(err))
		return dto.OrderResponse{}, err
	}
	return mapper.ToOrderResponse(order), nil
}

func (s *orderService) ByUser(ctx context.Context, userID uint) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list user orders",
			zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mapper.ToOrderResponses(orders), nil
}

func (s *orderService) ByStatus(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	orders, err := s.orders.ByStatus(ctx, status)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list orders by status",
			zap.String("status", string(status)), zap.Error(err))
		return nil, err
	}
	return mapper.ToOrderResponses(orders), nil
}

// Create places an order: snapshots unit prices, computes line and order
// totals, decrements product stock and persists the order with its items.
func (s *orderService) Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error) {
	log := logger.FromContext(ctx)

	items := make([]model.OrderItem, 0, len(req.Items))
	total := decimal.Zero
	for _, line := range req.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			log.Warn("Order references unknown product",
				zap.Uint("product_id", line.ProductID), zap.Error(err))
			prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
			return dto.OrderResponse{}, err
		}
		if !product.IsActive {
			log.Warn("Order references inactive product", zap.Uint("product_id", product.ID))
			prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
			return dto.OrderResponse{}, ErrProductInactive
		}
		if product.Stock < line.Quantity {
			log.Warn("Insufficient stock for order line",
				zap.Uint("product_id", product.ID),
				zap.Int("stock", product.Stock),
				zap.Int("quantity", line.Quantity))
			prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
			return dto.OrderResponse{}, ErrInsufficientStock
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		finalPrice := lineTotal.Sub(line.Discount)
		if finalPrice.IsNegative() {
			finalPrice = decimal.Zero
		}
		items = append(items, model.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: lineTotal,
			Discount:   line.Discount,
			FinalPrice: finalPrice,
		})
		total = total.Add(finalPrice)
	}

	number, err := s.uniqueOrderNumber(ctx)
	if err != nil {
		log.Error("Failed to generate order number", zap.Error(err))
		prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
		return dto.OrderResponse{}, err
	}

	order := model.Order{
		OrderNumber:     number,
		UserID:          userID,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
		OrderedAt:       time.Now().UTC(),
		Items:           items,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		log.Error("Failed to create order", zap.Uint("user_id", userID), zap.Error(err))
		prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
		return dto.OrderResponse{}, err
	}

	// Reserve stock after the order persists. Read-modify-write, same race
	// window as any other stock adjustment.
	for _, item := range order.Items {
		if _, err := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			log.Error("Failed to decrement stock for order line",
				zap.Uint("order_id", order.ID),
				zap.Uint("product_id", item.ProductID),
				zap.Error(err))
			prometheus.OrderOperationsCounter.WithLabelValues("create", "error").Inc()
			return dto.OrderResponse{}, err
		}
	}

	log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Uint("user_id", userID),
		zap.String("total", order.TotalAmount.String()))
	prometheus.OrderOperationsCounter.WithLabelValues("create", "success").Inc()
	return mapper.ToOrderResponse(&order), nil
}

// UpdateStatus moves the order through the lifecycle. The forward chain
// advances one step at a time; cancelled and refunded absorb from any
// non-terminal state. Shipped and delivered stamp their timestamps.
func (s *orderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		return dto.OrderResponse{}, ErrInvalidStatus
	}

	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		log.Warn("Order not found for status update", zap.Uint("order_id", id), zap.Error(err))
		return dto.OrderResponse{}, err
	}

	if !order.Status.CanTransitionTo(status) {
		log.Warn("Order status transition rejected",
			zap.Uint("order_id", id),
			zap.String("from", string(order.Status)),
			zap.String("to", string(status)))
		prometheus.OrderOperationsCounter.WithLabelValues("update_status", "rejected").Inc()
		return dto.OrderResponse{}, ErrInvalidTransition
	}

	oldStatus := order.Status
	order.Status = status
	now := time.Now().UTC()
	switch status {
	case model.OrderStatusShipped:
		order.ShippedAt = &now
	case model.OrderStatusDelivered:
		order.DeliveredAt = &now
	}

	if err := s.orders.Update(ctx, order); err != nil {
		log.Error("Failed to update order status", zap.Uint("order_id", id), zap.Error(err))
		prometheus.OrderOperationsCounter.WithLabelValues("update_status", "error").Inc()
		return dto.OrderResponse{}, err
	}

	log.Info("Order status updated",
		zap.Uint("order_id", id),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(status)))
	prometheus.OrderOperationsCounter.WithLabelValues("update_status", "success").Inc()
	return mapper.ToOrderResponse(order), nil
}

// uniqueOrderNumber generates an order number and retries until it is unused.
func (s *orderService) uniqueOrderNumber(ctx context.Context) (string, error) {
	for {
		number := newOrderNumber()
		exists, err := s.orders.OrderNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:12]
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
