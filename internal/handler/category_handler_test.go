package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/handler"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCategoryService struct {
	listFunc      func(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.CategoryResponse], error)
	getByIDFunc   func(ctx context.Context, id uint) (dto.CategoryResponse, error)
	getByNameFunc func(ctx context.Context, name string) (dto.CategoryResponse, error)
	createFunc    func(ctx context.Context, req *dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	updateFunc    func(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	deleteFunc    func(ctx context.Context, id uint) error
}

func (m *mockCategoryService) List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.CategoryResponse], error) {
	return m.listFunc(ctx, params)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id uint) (dto.CategoryResponse, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockCategoryService) GetByName(ctx context.Context, name string) (dto.CategoryResponse, error) {
	return m.getByNameFunc(ctx, name)
}

func (m *mockCategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockCategoryService) Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockCategoryService) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func TestCategoryHandler_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockCategoryService{
			getByNameFunc: func(ctx context.Context, name string) (dto.CategoryResponse, error) {
				return dto.CategoryResponse{ID: 3, Name: name}, nil
			},
		}
		h := handler.NewCategoryHandler(svc)

		c, rec := newTestContext(t, http.MethodGet, "/api/categories/name/Books", "")
		c.SetParamNames("name")
		c.SetParamValues("Books")

		require.NoError(t, h.GetByName(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
	})

	t.Run("unknown_name_is_404", func(t *testing.T) {
		svc := &mockCategoryService{
			getByNameFunc: func(ctx context.Context, name string) (dto.CategoryResponse, error) {
				return dto.CategoryResponse{}, service.ErrNotFound
			},
		}
		h := handler.NewCategoryHandler(svc)

		c, rec := newTestContext(t, http.MethodGet, "/api/categories/name/Nope", "")
		c.SetParamNames("name")
		c.SetParamValues("Nope")

		require.NoError(t, h.GetByName(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("duplicate_name_is_409", func(t *testing.T) {
		svc := &mockCategoryService{
			createFunc: func(ctx context.Context, req *dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
				return dto.CategoryResponse{}, service.ErrDuplicateName
			},
		}
		h := handler.NewCategoryHandler(svc)

		c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"Books","is_active":true}`)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short_name_is_400", func(t *testing.T) {
		h := handler.NewCategoryHandler(&mockCategoryService{})

		c, rec := newTestContext(t, http.MethodPost, "/api/categories", `{"name":"B"}`)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Run("category_in_use_is_409", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteFunc: func(ctx context.Context, id uint) error { return service.ErrCategoryInUse },
		}
		h := handler.NewCategoryHandler(svc)

		c, rec := newTestContext(t, http.MethodDelete, "/api/categories/3", "")
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		var gotID uint
		svc := &mockCategoryService{
			deleteFunc: func(ctx context.Context, id uint) error {
				gotID = id
				return nil
			},
		}
		h := handler.NewCategoryHandler(svc)

		c, rec := newTestContext(t, http.MethodDelete, "/api/categories/3", "")
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint(3), gotID)
	})
}
