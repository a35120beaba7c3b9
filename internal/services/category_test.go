package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

var _ repositories.CategoryRepositoryInterface = (*fakeCategoryRepo)(nil)

type fakeCategoryRepo struct {
	items map[uint64]entities.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[uint64]entities.Category{}}
}

func (r *fakeCategoryRepo) GetCategories(ctx context.Context, filter types.Filter) ([]entities.Category, uint64, error) {
	out := make([]entities.Category, 0, len(r.items))
	for id := uint64(1); id <= uint64(len(r.items)); id++ {
		if c, ok := r.items[id]; ok {
			out = append(out, c)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *fakeCategoryRepo) FindCategory(ctx context.Context, id uint64) (*entities.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("category")
	}
	return &c, nil
}

func (r *fakeCategoryRepo) CreateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	for _, c := range r.items {
		if c.Name == category.Name {
			return nil, apperrors.NewConflictError("category %q already exists", category.Name)
		}
	}
	category.ID = uint64(len(r.items) + 1)
	r.items[category.ID] = category
	return &category, nil
}

func (r *fakeCategoryRepo) UpdateCategory(ctx context.Context, category entities.Category) (*entities.Category, error) {
	r.items[category.ID] = category
	return &category, nil
}

func (r *fakeCategoryRepo) DeleteCategory(ctx context.Context, id uint64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.NewNotFoundError("category")
	}
	delete(r.items, id)
	return nil
}

func TestCategoryService_CreateAndList(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Computers", ResponsibleID: utils.ToPtr(uint64(4))})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, uint64(4), created.ResponsibleID.Uint64)
	assert.False(t, created.CompanyName.Valid)

	_, err = svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Vehicles"})
	require.NoError(t, err)

	list, total, err := svc.GetCategories(ctx, types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Equal(t, []string{"Computers", "Vehicles"}, []string{list[0].Name, list[1].Name})
}

func TestCategoryService_DuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Computers"})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Computers"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCategoryService_UpdatePartial(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Computers", ResponsibleID: utils.ToPtr(uint64(4))})
	require.NoError(t, err)

	res, err := svc.UpdateCategory(ctx, 1, dto.UpdateCategoryDTO{CompanyName: utils.ToPtr("Acme")})
	require.NoError(t, err)
	assert.Equal(t, "Computers", res.Name)
	assert.Equal(t, "Acme", res.CompanyName.String)
	assert.Equal(t, uint64(4), res.ResponsibleID.Uint64)

	_, err = svc.UpdateCategory(ctx, 9, dto.UpdateCategoryDTO{Name: utils.ToPtr("Ghost")})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCategoryService_Delete(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, dto.CreateCategoryDTO{Name: "Computers"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, 1))
	_, err = svc.FindCategory(ctx, 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.True(t, errors.Is(svc.DeleteCategory(ctx, 1), apperrors.ErrNotFound))
}
