package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/handler"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/shoplite/storeapi/pkg/jwtutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderService struct {
	listFunc         func(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.OrderResponse], error)
	getByIDFunc      func(ctx context.Context, id uint) (dto.OrderResponse, error)
	getByNumberFunc  func(ctx context.Context, number string) (dto.OrderResponse, error)
	byUserFunc       func(ctx context.Context, userID uint) ([]dto.OrderResponse, error)
	byStatusFunc     func(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error)
	createFunc       func(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error)
	updateStatusFunc func(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error)
}

func (m *mockOrderService) List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.OrderResponse], error) {
	return m.listFunc(ctx, params)
}

func (m *mockOrderService) GetByID(ctx context.Context, id uint) (dto.OrderResponse, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockOrderService) GetByOrderNumber(ctx context.Context, number string) (dto.OrderResponse, error) {
	return m.getByNumberFunc(ctx, number)
}

func (m *mockOrderService) ByUser(ctx context.Context, userID uint) ([]dto.OrderResponse, error) {
	return m.byUserFunc(ctx, userID)
}

func (m *mockOrderService) ByStatus(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error) {
	return m.byStatusFunc(ctx, status)
}

func (m *mockOrderService) Create(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error) {
	return m.createFunc(ctx, userID, req)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error) {
	return m.updateStatusFunc(ctx, id, status)
}

func TestOrderHandler_Create(t *testing.T) {
	body := `{"shipping_address":"1 Main St","billing_address":"1 Main St","items":[{"product_id":3,"quantity":2}]}`

	t.Run("uses_authenticated_user", func(t *testing.T) {
		var gotUserID uint
		svc := &mockOrderService{
			createFunc: func(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error) {
				gotUserID = userID
				return dto.OrderResponse{ID: 1, UserID: userID, Status: string(model.OrderStatusPending)}, nil
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodPost, "/api/orders", body)
		c.Set("user", &jwtutil.UserClaims{UserID: 42, Email: "jo@example.com", Role: model.RoleCustomer})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, uint(42), gotUserID)
	})

	t.Run("missing_claims_is_401", func(t *testing.T) {
		h := handler.NewOrderHandler(&mockOrderService{})

		c, rec := newTestContext(t, http.MethodPost, "/api/orders", body)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty_items_is_400", func(t *testing.T) {
		h := handler.NewOrderHandler(&mockOrderService{})

		c, rec := newTestContext(t, http.MethodPost, "/api/orders",
			`{"shipping_address":"1 Main St","billing_address":"1 Main St","items":[]}`)
		c.Set("user", &jwtutil.UserClaims{UserID: 42})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("insufficient_stock_is_400", func(t *testing.T) {
		svc := &mockOrderService{
			createFunc: func(ctx context.Context, userID uint, req *dto.CreateOrderRequest) (dto.OrderResponse, error) {
				return dto.OrderResponse{}, service.ErrInsufficientStock
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodPost, "/api/orders", body)
		c.Set("user", &jwtutil.UserClaims{UserID: 42})

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("forwards_status", func(t *testing.T) {
		var gotStatus model.OrderStatus
		svc := &mockOrderService{
			updateStatusFunc: func(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error) {
				gotStatus = status
				return dto.OrderResponse{ID: id, Status: string(status)}, nil
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodPatch, "/api/orders/5/status", `{"status":"confirmed"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, h.UpdateStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.OrderStatusConfirmed, gotStatus)
	})

	t.Run("invalid_transition_is_400", func(t *testing.T) {
		svc := &mockOrderService{
			updateStatusFunc: func(ctx context.Context, id uint, status model.OrderStatus) (dto.OrderResponse, error) {
				return dto.OrderResponse{}, service.ErrInvalidTransition
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodPatch, "/api/orders/5/status", `{"status":"delivered"}`)
		c.SetParamNames("id")
		c.SetParamValues("5")

		require.NoError(t, h.UpdateStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_ByStatus(t *testing.T) {
	t.Run("known_status", func(t *testing.T) {
		svc := &mockOrderService{
			byStatusFunc: func(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error) {
				return []dto.OrderResponse{{ID: 1, Status: string(status)}}, nil
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodGet, "/api/orders/status/shipped", "")
		c.SetParamNames("status")
		c.SetParamValues("shipped")

		require.NoError(t, h.ByStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown_status_is_400", func(t *testing.T) {
		svc := &mockOrderService{
			byStatusFunc: func(ctx context.Context, status model.OrderStatus) ([]dto.OrderResponse, error) {
				return nil, service.ErrInvalidStatus
			},
		}
		h := handler.NewOrderHandler(svc)

		c, rec := newTestContext(t, http.MethodGet, "/api/orders/status/bogus", "")
		c.SetParamNames("status")
		c.SetParamValues("bogus")

		require.NoError(t, h.ByStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	svc := &mockOrderService{
		getByIDFunc: func(ctx context.Context, id uint) (dto.OrderResponse, error) {
			return dto.OrderResponse{}, service.ErrNotFound
		},
	}
	h := handler.NewOrderHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/orders/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
