package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductHandler exposes the product endpoints.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates the product handler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products with paging and query filters
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	var params dto.ProductListParams
	if err := c.Bind(&params); err != nil {
		log.Warn("Invalid product list parameters", zap.Error(err))
		return respondError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	page, err := h.products.List(c.Request().Context(), params)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", page)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid product id")
	}

	product, err := h.products.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Product retrieved", product)
}

// GetBySKU handles GET /api/products/sku/:sku
func (h *ProductHandler) GetBySKU(c echo.Context) error {
	product, err := h.products.GetBySKU(c.Request().Context(), c.Param("sku"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Product retrieved", product)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c echo.Context) error {
	var req dto.CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusCreated, "Product created", product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid product id")
	}

	var req dto.UpdateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.products.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Product updated", product)
}

// Delete handles DELETE /api/products/:id (soft delete)
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid product id")
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Product deleted", nil)
}

// ByCategory handles GET /api/products/category/:id
func (h *ProductHandler) ByCategory(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid category id")
	}

	products, err := h.products.ByCategory(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", products)
}

// Active handles GET /api/products/active
func (h *ProductHandler) Active(c echo.Context) error {
	products, err := h.products.Active(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", products)
}

// LowStock handles GET /api/products/low-stock?threshold=
func (h *ProductHandler) LowStock(c echo.Context) error {
	threshold := 0
	if raw := c.QueryParam("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return respondError(c, http.StatusBadRequest, "Invalid threshold")
		}
		threshold = v
	}

	products, err := h.products.LowStock(c.Request().Context(), threshold)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", products)
}

// Search handles GET /api/products/search?term=
func (h *ProductHandler) Search(c echo.Context) error {
	term := c.QueryParam("term")
	if term == "" {
		return respondError(c, http.StatusBadRequest, "Search term is required")
	}

	products, err := h.products.Search(c.Request().Context(), term)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", products)
}

// PriceRange handles GET /api/products/price-range?min=&max=, ordered by
// ascending price.
func (h *ProductHandler) PriceRange(c echo.Context) error {
	min, err := decimal.NewFromString(c.QueryParam("min"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid minimum price")
	}
	max, err := decimal.NewFromString(c.QueryParam("max"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid maximum price")
	}

	products, err := h.products.PriceRange(c.Request().Context(), min, max)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Products retrieved", products)
}

// AdjustStock handles PATCH /api/products/:id/stock
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid product id")
	}

	var req dto.AdjustStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.products.AdjustStock(c.Request().Context(), id, req.Delta)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Stock adjusted", product)
}

// Statistics handles GET /api/products/statistics
func (h *ProductHandler) Statistics(c echo.Context) error {
	stats, err := h.products.Statistics(c.Request().Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Statistics computed", stats)
}

func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
