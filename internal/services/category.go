package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context, filter types.Filter) ([]dto.CategoryDTO, uint64, error)
	FindCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryService struct {
	categoryRepository repositories.CategoryRepositoryInterface
	logger             *zap.Logger
}

func NewCategoryService(categoryRepository repositories.CategoryRepositoryInterface, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{categoryRepository: categoryRepository, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context, filter types.Filter) ([]dto.CategoryDTO, uint64, error) {
	list, total, err := s.categoryRepository.GetCategories(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, categoryToDTO(&list[i]))
	}
	return out, total, nil
}

func (s *CategoryService) FindCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	c, err := s.categoryRepository.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	res := categoryToDTO(c)
	return &res, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	created, err := s.categoryRepository.CreateCategory(ctx, entities.Category{
		Name:          payload.Name,
		ResponsibleID: null.Uint64FromPtr(payload.ResponsibleID),
		CompanyName:   null.StringFromPtr(payload.CompanyName),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("category created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	res := categoryToDTO(created)
	return &res, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	current, err := s.categoryRepository.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.ResponsibleID != nil {
		current.ResponsibleID = null.Uint64From(*payload.ResponsibleID)
	}
	if payload.CompanyName != nil {
		current.CompanyName = null.StringFrom(*payload.CompanyName)
	}

	updated, err := s.categoryRepository.UpdateCategory(ctx, *current)
	if err != nil {
		return nil, err
	}
	res := categoryToDTO(updated)
	return &res, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.categoryRepository.DeleteCategory(ctx, id)
}
