package service_test

import (
	"context"
	"testing"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id uint, sku string, stock int) *model.Product {
	return &model.Product{
		BaseModel:  model.BaseModel{ID: id},
		Name:       "iPhone 15 Pro",
		SKU:        sku,
		Price:      decimal.NewFromFloat(999.99),
		Stock:      stock,
		CategoryID: 1,
		IsActive:   true,
	}
}

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateProductRequest
		skuExists bool
		wantErr   error
	}{
		{
			name: "duplicate_sku_conflicts",
			req: dto.CreateProductRequest{
				Name: "Widget", SKU: "WID001", Price: decimal.NewFromInt(10), CategoryID: 1,
			},
			skuExists: true,
			wantErr:   service.ErrDuplicateSKU,
		},
		{
			name: "negative_price_rejected",
			req: dto.CreateProductRequest{
				Name: "Widget", SKU: "WID001", Price: decimal.NewFromInt(-1), CategoryID: 1,
			},
			wantErr: service.ErrInvalidPrice,
		},
		{
			name: "success",
			req: dto.CreateProductRequest{
				Name: "Widget", SKU: "WID001", Price: decimal.NewFromInt(10), Stock: 5, CategoryID: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockProductRepository{
				skuExistsFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
					assert.Zero(t, excludeID)
					return tt.skuExists, nil
				},
				createFunc: func(ctx context.Context, product *model.Product) error {
					product.ID = 42
					return nil
				},
			}
			svc := service.NewProductService(repo, nil)

			resp, err := svc.Create(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(42), resp.ID)
			assert.Equal(t, tt.req.SKU, resp.SKU)
		})
	}
}

func TestProductService_Update_ExcludesSelfFromSKUCheck(t *testing.T) {
	var checkedExcludeID uint
	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			return sampleProduct(7, "OLD-SKU", 3), nil
		},
		skuExistsFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
			checkedExcludeID = excludeID
			return false, nil
		},
		updateFunc: func(ctx context.Context, product *model.Product) error { return nil },
	}
	svc := service.NewProductService(repo, nil)

	req := dto.UpdateProductRequest{
		Name: "Widget", SKU: "NEW-SKU", Price: decimal.NewFromInt(20), CategoryID: 1,
	}
	resp, err := svc.Update(context.Background(), 7, &req)
	require.NoError(t, err)
	assert.Equal(t, uint(7), checkedExcludeID)
	assert.Equal(t, "NEW-SKU", resp.SKU)
}

func TestProductService_Update_SameSKUSkipsUniquenessCheck(t *testing.T) {
	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			return sampleProduct(7, "SAME-SKU", 3), nil
		},
		skuExistsFunc: func(ctx context.Context, sku string, excludeID uint) (bool, error) {
			t.Fatal("SKU uniqueness should not be checked when the SKU is unchanged")
			return false, nil
		},
		updateFunc: func(ctx context.Context, product *model.Product) error { return nil },
	}
	svc := service.NewProductService(repo, nil)

	req := dto.UpdateProductRequest{
		Name: "Widget", SKU: "SAME-SKU", Price: decimal.NewFromInt(20), CategoryID: 1,
	}
	_, err := svc.Update(context.Background(), 7, &req)
	require.NoError(t, err)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewProductService(repo, nil)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProductService_GetByID_CacheHitSkipsRepository(t *testing.T) {
	cache := newMockProductCache()
	cache.byID[7] = sampleProduct(7, "SKU7", 3)

	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			t.Fatal("repository should not be hit on a cache hit")
			return nil, nil
		},
	}
	svc := service.NewProductService(repo, cache)

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
}

func TestProductService_GetByID_CacheMissFillsCache(t *testing.T) {
	cache := newMockProductCache()
	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			return sampleProduct(id, "SKU7", 3), nil
		},
	}
	svc := service.NewProductService(repo, cache)

	_, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.NotNil(t, cache.byID[7])
}

func TestProductService_Delete_InvalidatesCache(t *testing.T) {
	cache := newMockProductCache()
	cache.byID[7] = sampleProduct(7, "SKU7", 3)
	cache.bySKU["SKU7"] = cache.byID[7]

	repo := &mockProductRepository{
		getByIDFunc: func(ctx context.Context, id uint) (*model.Product, error) {
			return sampleProduct(7, "SKU7", 3), nil
		},
		deleteFunc: func(ctx context.Context, product *model.Product) error { return nil },
	}
	svc := service.NewProductService(repo, cache)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, 1, cache.invalidate)
	assert.Nil(t, cache.byID[7])
}

func TestProductService_AdjustStock(t *testing.T) {
	repo := &mockProductRepository{
		adjustFunc: func(ctx context.Context, id uint, delta int) (*model.Product, error) {
			p := sampleProduct(id, "SKU7", model.AdjustedStock(5, delta))
			return p, nil
		},
	}
	svc := service.NewProductService(repo, nil)

	resp, err := svc.AdjustStock(context.Background(), 7, -1000)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
}

func TestProductService_AdjustStock_MissingProduct(t *testing.T) {
	repo := &mockProductRepository{
		adjustFunc: func(ctx context.Context, id uint, delta int) (*model.Product, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewProductService(repo, nil)

	_, err := svc.AdjustStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProductService_PriceRange_RejectsInvertedBounds(t *testing.T) {
	repo := &mockProductRepository{
		priceRangeFunc: func(ctx context.Context, min, max decimal.Decimal) ([]model.Product, error) {
			t.Fatal("repository should not be queried for an inverted range")
			return nil, nil
		},
	}
	svc := service.NewProductService(repo, nil)

	_, err := svc.PriceRange(context.Background(), decimal.NewFromInt(100), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, service.ErrInvalidPrice)
}

func TestProductService_List_PaginatesAndClamps(t *testing.T) {
	var gotPage, gotSize int
	repo := &mockProductRepository{
		listFunc: func(ctx context.Context, filter repository.ProductFilter, page, size int) ([]model.Product, int64, error) {
			gotPage, gotSize = page, size
			return []model.Product{*sampleProduct(1, "A", 1)}, 25, nil
		},
	}
	svc := service.NewProductService(repo, nil)

	params := dto.ProductListParams{PageParams: dto.PageParams{Page: 2, PageSize: 500}}
	page, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, dto.MaxPageSize, gotSize)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.True(t, page.HasPrevious)
}
