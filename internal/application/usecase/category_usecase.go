package usecase

import (
	"context"
	"time"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// CategoryNames resuelve nombres de categoría por ID, normalmente detrás de una
// caché read-through. Invalidate descarta la caché tras cualquier escritura.
type CategoryNames interface {
	Names(ctx context.Context) (map[int64]string, error)
	Invalidate(ctx context.Context) error
}

// CategoryUseCase casos de uso CRUD para categorías. Toda escritura invalida la
// caché de nombres (invalidate-on-write).
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	names CategoryNames
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, names CategoryNames) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, names: names}
}

// Create crea una categoría e invalida la caché de nombres.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	_ = uc.names.Invalidate(ctx)
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update actualiza una categoría e invalida la caché de nombres.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	_ = uc.names.Invalidate(ctx)
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría e invalida la caché de nombres.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	_ = uc.names.Invalidate(ctx)
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
