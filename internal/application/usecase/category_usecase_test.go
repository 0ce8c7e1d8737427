package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/application/usecase"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*entity.Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	delete(r.categories, id)
	return nil
}

// fakeNames registra las invalidaciones de la caché de nombres.
type fakeNames struct{ invalidations int }

func (n *fakeNames) Names(context.Context) (map[int64]string, error) { return nil, nil }
func (n *fakeNames) Invalidate(context.Context) error {
	n.invalidations++
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests invalidate-on-write
// ──────────────────────────────────────────────────────────────────────────────

// Toda escritura (create/update/delete) invalida la caché de nombres; las
// lecturas no la tocan.
func TestCategoryUseCase_EscriturasInvalidanCache(t *testing.T) {
	repo := newFakeCategoryRepo()
	names := &fakeNames{}
	uc := usecase.NewCategoryUseCase(repo, names)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Varitas"})
	require.NoError(t, err)
	assert.Equal(t, 1, names.invalidations)

	_, err = uc.GetByID(created.ID)
	require.NoError(t, err)
	_, err = uc.List()
	require.NoError(t, err)
	assert.Equal(t, 1, names.invalidations, "las lecturas no deben invalidar")

	nuevo := "Varitas y bastones"
	_, err = uc.Update(ctx, created.ID, dto.UpdateCategoryRequest{Name: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, 2, names.invalidations)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.Equal(t, 3, names.invalidations)
}

func TestCategoryUseCase_UpdateInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &fakeNames{})
	nombre := "x"
	_, err := uc.Update(context.Background(), 99, dto.UpdateCategoryRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_DeleteInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(), &fakeNames{})
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
