package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/middleware"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/service"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates the order handler.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/orders
func (h *OrderHandler) List(c echo.Context) error {
	var params dto.PageParams
	if err := c.Bind(&params); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	page, err := h.orders.List(c.Request().Context(), params)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Orders retrieved", page)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid order id")
	}

	order, err := h.orders.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Order retrieved", order)
}

// GetByNumber handles GET /api/orders/number/:number
func (h *OrderHandler) GetByNumber(c echo.Context) error {
	order, err := h.orders.GetByOrderNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Order retrieved", order)
}

// ByUser handles GET /api/orders/user/:id
func (h *OrderHandler) ByUser(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid user id")
	}

	orders, err := h.orders.ByUser(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Orders retrieved", orders)
}

// ByStatus handles GET /api/orders/status/:status
func (h *OrderHandler) ByStatus(c echo.Context) error {
	orders, err := h.orders.ByStatus(c.Request().Context(), model.OrderStatus(c.Param("status")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Orders retrieved", orders)
}

// Create handles POST /api/orders, placing an order for the authenticated
// user.
func (h *OrderHandler) Create(c echo.Context) error {
	claims := middleware.ClaimsFromEcho(c)
	if claims == nil {
		return respondError(c, http.StatusUnauthorized, "Authentication required")
	}

	var req dto.CreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orders.Create(c.Request().Context(), claims.UserID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusCreated, "Order created", order)
}

// UpdateStatus handles PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid order id")
	}

	var req dto.UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Order status updated", order)
}
