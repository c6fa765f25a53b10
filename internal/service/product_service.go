package service

import (
	"context"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/mapper"
	"github.com/shoplite/storeapi/internal/model"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shoplite/storeapi/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductCache is the read-cache hook the product service uses. A nil cache
// disables caching entirely.
type ProductCache interface {
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	Set(ctx context.Context, product *model.Product) error
	Invalidate(ctx context.Context, product *model.Product) error
}

// ProductService orchestrates the product repository, mapper and cache.
type ProductService interface {
	List(ctx context.Context, params dto.ProductListParams) (dto.PaginatedResponse[dto.ProductResponse], error)
	GetByID(ctx context.Context, id uint) (dto.ProductResponse, error)
	GetBySKU(ctx context.Context, sku string) (dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductResponse, error)
	Active(ctx context.Context) ([]dto.ProductResponse, error)
	LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error)
	Search(ctx context.Context, term string) ([]dto.ProductResponse, error)
	PriceRange(ctx context.Context, min, max decimal.Decimal) ([]dto.ProductResponse, error)
	AdjustStock(ctx context.Context, id uint, delta int) (dto.ProductResponse, error)
	Statistics(ctx context.Context) (*repository.ProductStatistics, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache ProductCache
}

// NewProductService creates the product service. cache may be nil.
func NewProductService(repo repository.ProductRepository, cache ProductCache) ProductService {
	return &productService{repo: repo, cache: cache}
}

func (s *productService) List(ctx context.Context, params dto.ProductListParams) (dto.PaginatedResponse[dto.ProductResponse], error) {
	log := logger.FromContext(ctx)
	params.Normalize()

	filter := repository.ProductFilter{
		Search:     params.Search,
		CategoryID: params.CategoryID,
		MinPrice:   params.MinPrice,
		MaxPrice:   params.MaxPrice,
		ActiveOnly: params.ActiveOnly,
	}
	products, total, err := s.repo.List(ctx, filter, params.Page, params.PageSize)
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		prometheus.ProductOperationsCounter.WithLabelValues("list", "error").Inc()
		return dto.PaginatedResponse[dto.ProductResponse]{}, err
	}

	log.Info("Products listed",
		zap.Int("count", len(products)),
		zap.Int64("total", total),
		zap.Int("page", params.Page))
	prometheus.ProductOperationsCounter.WithLabelValues("list", "success").Inc()
	return dto.NewPaginatedResponse(mapper.ToProductResponses(products), total, params.Page, params.PageSize), nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (dto.ProductResponse, error) {
	log := logger.FromContext(ctx)

	if cached := s.cacheGetByID(ctx, id); cached != nil {
		return mapper.ToProductResponse(cached), nil
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Product not found", zap.Uint("product_id", id), zap.Error(err))
		return dto.ProductResponse{}, err
	}

	s.cacheSet(ctx, product)
	return mapper.ToProductResponse(product), nil
}

func (s *productService) GetBySKU(ctx context.Context, sku string) (dto.ProductResponse, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		cached, err := s.cache.GetBySKU(ctx, sku)
		if err != nil {
			log.Warn("Product cache lookup failed", zap.String("sku", sku), zap.Error(err))
		} else if cached != nil {
			prometheus.CacheHitsCounter.Inc()
			return mapper.ToProductResponse(cached), nil
		} else {
			prometheus.CacheMissesCounter.Inc()
		}
	}

	product, err := s.repo.BySKU(ctx, sku)
	if err != nil {
		log.Warn("Product not found by SKU", zap.String("sku", sku), zap.Error(err))
		return dto.ProductResponse{}, err
	}

	s.cacheSet(ctx, product)
	return mapper.ToProductResponse(product), nil
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (dto.ProductResponse, error) {
	log := logger.FromContext(ctx)

	if req.Price.IsNegative() {
		return dto.ProductResponse{}, ErrInvalidPrice
	}

	// SKU must be unique among non-deleted products; a soft-deleted product
	// with the same SKU does not block creation.
	exists, err := s.repo.SKUExists(ctx, req.SKU, 0)
	if err != nil {
		log.Error("Failed to check SKU uniqueness", zap.String("sku", req.SKU), zap.Error(err))
		return dto.ProductResponse{}, err
	}
	if exists {
		log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
		prometheus.ProductOperationsCounter.WithLabelValues("create", "conflict").Inc()
		return dto.ProductResponse{}, ErrDuplicateSKU
	}

	product := mapper.FromCreateProductRequest(req)
	if err := s.repo.Create(ctx, &product); err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.String("sku", req.SKU),
			zap.Error(err))
		prometheus.ProductOperationsCounter.WithLabelValues("create", "error").Inc()
		return dto.ProductResponse{}, err
	}

	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("sku", product.SKU))
	prometheus.ProductOperationsCounter.WithLabelValues("create", "success").Inc()
	return mapper.ToProductResponse(&product), nil
}

func (s *productService) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (dto.ProductResponse, error) {
	log := logger.FromContext(ctx)

	if req.Price.IsNegative() {
		return dto.ProductResponse{}, ErrInvalidPrice
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Product not found for update", zap.Uint("product_id", id), zap.Error(err))
		return dto.ProductResponse{}, err
	}

	if req.SKU != product.SKU {
		exists, err := s.repo.SKUExists(ctx, req.SKU, id)
		if err != nil {
			log.Error("Failed to check SKU uniqueness", zap.String("sku", req.SKU), zap.Error(err))
			return dto.ProductResponse{}, err
		}
		if exists {
			log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
			prometheus.ProductOperationsCounter.WithLabelValues("update", "conflict").Inc()
			return dto.ProductResponse{}, ErrDuplicateSKU
		}
	}

	oldSKU := product.SKU
	mapper.ApplyUpdateProductRequest(product, req)
	if err := s.repo.Update(ctx, product); err != nil {
		log.Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
		prometheus.ProductOperationsCounter.WithLabelValues("update", "error").Inc()
		return dto.ProductResponse{}, err
	}

	// Invalidate under the old SKU as well when it changed.
	s.cacheInvalidate(ctx, &model.Product{BaseModel: model.BaseModel{ID: id}, SKU: oldSKU})
	if oldSKU != product.SKU {
		s.cacheInvalidate(ctx, product)
	}

	log.Info("Product updated",
		zap.Uint("product_id", id),
		zap.String("old_sku", oldSKU),
		zap.String("new_sku", product.SKU))
	prometheus.ProductOperationsCounter.WithLabelValues("update", "success").Inc()
	return mapper.ToProductResponse(product), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	log := logger.FromContext(ctx)

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Product not found for deletion", zap.Uint("product_id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		log.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		prometheus.ProductOperationsCounter.WithLabelValues("delete", "error").Inc()
		return err
	}

	s.cacheInvalidate(ctx, product)
	log.Info("Product deleted",
		zap.Uint("product_id", id),
		zap.String("sku", product.SKU))
	prometheus.ProductOperationsCounter.WithLabelValues("delete", "success").Inc()
	return nil
}

func (s *productService) ByCategory(ctx context.Context, categoryID uint) ([]dto.ProductResponse, error) {
	products, err := s.repo.ByCategory(ctx, categoryID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list products by category",
			zap.Uint("category_id", categoryID), zap.Error(err))
		return nil, err
	}
	return mapper.ToProductResponses(products), nil
}

func (s *productService) Active(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ActiveOnly(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list active products", zap.Error(err))
		return nil, err
	}
	return mapper.ToProductResponses(products), nil
}

func (s *productService) LowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	products, err := s.repo.LowStock(ctx, threshold)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list low-stock products",
			zap.Int("threshold", threshold), zap.Error(err))
		return nil, err
	}
	return mapper.ToProductResponses(products), nil
}

func (s *productService) Search(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	products, err := s.repo.Search(ctx, term)
	if err != nil {
		logger.FromContext(ctx).Error("Product search failed",
			zap.String("term", term), zap.Error(err))
		return nil, err
	}
	return mapper.ToProductResponses(products), nil
}

func (s *productService) PriceRange(ctx context.Context, min, max decimal.Decimal) ([]dto.ProductResponse, error) {
	if max.LessThan(min) {
		return nil, ErrInvalidPrice
	}
	products, err := s.repo.PriceRange(ctx, min, max)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list products by price range",
			zap.String("min", min.String()),
			zap.String("max", max.String()),
			zap.Error(err))
		return nil, err
	}
	return mapper.ToProductResponses(products), nil
}

func (s *productService) AdjustStock(ctx context.Context, id uint, delta int) (dto.ProductResponse, error) {
	log := logger.FromContext(ctx)

	product, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		log.Warn("Stock adjustment failed",
			zap.Uint("product_id", id),
			zap.Int("delta", delta),
			zap.Error(err))
		prometheus.ProductOperationsCounter.WithLabelValues("adjust_stock", "error").Inc()
		return dto.ProductResponse{}, err
	}

	s.cacheInvalidate(ctx, product)
	log.Info("Stock adjusted",
		zap.Uint("product_id", id),
		zap.Int("delta", delta),
		zap.Int("stock", product.Stock))
	prometheus.ProductOperationsCounter.WithLabelValues("adjust_stock", "success").Inc()
	return mapper.ToProductResponse(product), nil
}

func (s *productService) Statistics(ctx context.Context) (*repository.ProductStatistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to compute product statistics", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *productService) cacheGetByID(ctx context.Context, id uint) *model.Product {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warn("Product cache lookup failed", zap.Uint("product_id", id), zap.Error(err))
		return nil
	}
	if cached == nil {
		prometheus.CacheMissesCounter.Inc()
		return nil
	}
	prometheus.CacheHitsCounter.Inc()
	return cached
}

func (s *productService) cacheSet(ctx context.Context, product *model.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, product); err != nil {
		logger.FromContext(ctx).Warn("Failed to cache product",
			zap.Uint("product_id", product.ID), zap.Error(err))
	}
}

func (s *productService) cacheInvalidate(ctx context.Context, product *model.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, product); err != nil {
		logger.FromContext(ctx).Warn("Failed to invalidate product cache",
			zap.Uint("product_id", product.ID), zap.Error(err))
	}
}
