package service_test

import (
	"context"
	"testing"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	repo := &mockCategoryRepository{
		nameExistsFunc: func(ctx context.Context, name string, excludeID uint) (bool, error) {
			return true, nil
		},
	}
	svc := service.NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &dto.CreateCategoryRequest{Name: "Phones"})
	assert.ErrorIs(t, err, service.ErrDuplicateName)
}

func TestCategoryService_Delete_WithProductsRejected(t *testing.T) {
	repo := &mockCategoryRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Category, error) {
			return &model.Category{BaseModel: model.BaseModel{ID: id}, Name: "Phones"}, nil
		},
		deleteFunc: func(ctx context.Context, category *model.Category) error {
			return repository.ErrCategoryInUse
		},
	}
	svc := service.NewCategoryService(repo)

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, service.ErrCategoryInUse)
}

func TestCategoryService_Update_SameNameSkipsCheck(t *testing.T) {
	repo := &mockCategoryRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Category, error) {
			return &model.Category{BaseModel: model.BaseModel{ID: id}, Name: "Phones"}, nil
		},
		nameExistsFunc: func(ctx context.Context, name string, excludeID uint) (bool, error) {
			t.Fatal("name uniqueness should not be checked when the name is unchanged")
			return false, nil
		},
		updateFunc: func(ctx context.Context, category *model.Category) error { return nil },
	}
	svc := service.NewCategoryService(repo)

	resp, err := svc.Update(context.Background(), 3, &dto.UpdateCategoryRequest{Name: "Phones", IsActive: true})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestCategoryService_List(t *testing.T) {
	repo := &mockCategoryRepository{
		paginateFunc: func(ctx context.Context, page, size int, orderBy string, query interface{}, args ...interface{}) ([]model.Category, int64, error) {
			return []model.Category{
				{BaseModel: model.BaseModel{ID: 1}, Name: "Phones"},
				{BaseModel: model.BaseModel{ID: 2}, Name: "Laptops"},
			}, 2, nil
		},
	}
	svc := service.NewCategoryService(repo)

	page, err := svc.List(context.Background(), dto.PageParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
}
