package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/service"
)

// CategoryHandler exposes the category endpoints.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c echo.Context) error {
	var params dto.PageParams
	if err := c.Bind(&params); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	page, err := h.categories.List(c.Request().Context(), params)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Categories retrieved", page)
}

// Get handles GET /api/categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid category id")
	}

	category, err := h.categories.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Category retrieved", category)
}

// GetByName handles GET /api/categories/name/:name
func (h *CategoryHandler) GetByName(c echo.Context) error {
	category, err := h.categories.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Category retrieved", category)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categories.Create(c.Request().Context(), &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusCreated, "Category created", category)
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categories.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Category updated", category)
}

// Delete handles DELETE /api/categories/:id. Deleting a category that still
// has products answers 409.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return respondError(c, http.StatusBadRequest, "Invalid category id")
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, http.StatusOK, "Category deleted", nil)
}
