package service

import (
	"context"

	"github.com/shoplite/storeapi/internal/dto"
	"github.com/shoplite/storeapi/internal/mapper"
	"github.com/shoplite/storeapi/internal/repository"
	"github.com/shoplite/storeapi/pkg/logger"
	"github.com/shoplite/storeapi/prometheus"
	"go.uber.org/zap"
)

// CategoryService orchestrates category CRUD with name uniqueness and the
// delete-restrict guard.
type CategoryService interface {
	List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.CategoryResponse], error)
	GetByID(ctx context.Context, id uint) (dto.CategoryResponse, error)
	GetByName(ctx context.Context, name string) (dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context, params dto.PageParams) (dto.PaginatedResponse[dto.CategoryResponse], error) {
	log := logger.FromContext(ctx)
	params.Normalize()

	categories, total, err := s.repo.Paginate(ctx, params.Page, params.PageSize, "", nil)
	if err != nil {
		log.Error("Failed to list categories", zap.Error(err))
		prometheus.CategoryOperationsCounter.WithLabelValues("list", "error").Inc()
		return dto.PaginatedResponse[dto.CategoryResponse]{}, err
	}

	prometheus.CategoryOperationsCounter.WithLabelValues("list", "success").Inc()
	return dto.NewPaginatedResponse(mapper.ToCategoryResponses(categories), total, params.Page, params.PageSize), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (dto.CategoryResponse, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Warn("Category not found", zap.Uint("category_id", id), zap.Error(err))
		return dto.CategoryResponse{}, err
	}
	return mapper.ToCategoryResponse(category), nil
}

func (s *categoryService) GetByName(ctx context.Context, name string) (dto.CategoryResponse, error) {
	category, err := s.repo.ByName(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Warn("Category not found by name", zap.String("name", name), zap.Error(err))
		return dto.CategoryResponse{}, err
	}
	return mapper.ToCategoryResponse(category), nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (dto.CategoryResponse, error) {
	log := logger.FromContext(ctx)

	exists, err := s.repo.NameExists(ctx, req.Name, 0)
	if err != nil {
		log.Error("Failed to check category name uniqueness", zap.String("name", req.Name), zap.Error(err))
		return dto.CategoryResponse{}, err
	}
	if exists {
		log.Warn("Category with this name already exists", zap.String("name", req.Name))
		prometheus.CategoryOperationsCounter.WithLabelValues("create", "conflict").Inc()
		return dto.CategoryResponse{}, ErrDuplicateName
	}

	category := mapper.FromCreateCategoryRequest(req)
	if err := s.repo.Create(ctx, &category); err != nil {
		log.Error("Failed to create category", zap.String("name", req.Name), zap.Error(err))
		prometheus.CategoryOperationsCounter.WithLabelValues("create", "error").Inc()
		return dto.CategoryResponse{}, err
	}

	log.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	prometheus.CategoryOperationsCounter.WithLabelValues("create", "success").Inc()
	return mapper.ToCategoryResponse(&category), nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (dto.CategoryResponse, error) {
	log := logger.FromContext(ctx)

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Category not found for update", zap.Uint("category_id", id), zap.Error(err))
		return dto.CategoryResponse{}, err
	}

	if req.Name != category.Name {
		exists, err := s.repo.NameExists(ctx, req.Name, id)
		if err != nil {
			log.Error("Failed to check category name uniqueness", zap.String("name", req.Name), zap.Error(err))
			return dto.CategoryResponse{}, err
		}
		if exists {
			log.Warn("Category with this name already exists", zap.String("name", req.Name))
			prometheus.CategoryOperationsCounter.WithLabelValues("update", "conflict").Inc()
			return dto.CategoryResponse{}, ErrDuplicateName
		}
	}

	mapper.ApplyUpdateCategoryRequest(category, req)
	if err := s.repo.Update(ctx, category); err != nil {
		log.Error("Failed to update category", zap.Uint("category_id", id), zap.Error(err))
		prometheus.CategoryOperationsCounter.WithLabelValues("update", "error").Inc()
		return dto.CategoryResponse{}, err
	}

	log.Info("Category updated", zap.Uint("category_id", id), zap.String("name", category.Name))
	prometheus.CategoryOperationsCounter.WithLabelValues("update", "success").Inc()
	return mapper.ToCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	log := logger.FromContext(ctx)

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Category not found for deletion", zap.Uint("category_id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Delete(ctx, category); err != nil {
		log.Warn("Failed to delete category", zap.Uint("category_id", id), zap.Error(err))
		prometheus.CategoryOperationsCounter.WithLabelValues("delete", "error").Inc()
		return err
	}

	log.Info("Category deleted", zap.Uint("category_id", id), zap.String("name", category.Name))
	prometheus.CategoryOperationsCounter.WithLabelValues("delete", "success").Inc()
	return nil
}
