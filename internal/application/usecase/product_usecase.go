package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
	"github.com/magicshop/admin-api/pkg/normalize"
)

// Límites del histograma de precios.
const (
	defaultHistogramBuckets = 10
	maxHistogramBuckets     = 50
)

// ProductUseCase casos de uso del catálogo de productos. La cantidad en stock
// es de solo lectura aquí: la muta únicamente el motor de movimientos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	reviewRepo repository.ReviewRepository
	names      CategoryNames
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, reviewRepo repository.ReviewRepository, names CategoryNames) *ProductUseCase {
	return &ProductUseCase{repo: repo, reviewRepo: reviewRepo, names: names}
}

// Create crea un producto. Nace con cantidad cero y estado "Out of Stock".
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:           in.Name,
		NameNormalized: normalize.Fold(in.Name),
		Description:    in.Description,
		Price:          in.Price,
		CategoryID:     in.CategoryID,
		PublisherID:    in.PublisherID,
		ImageURL:       in.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	product.SetQuantity(0)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product, false)
}

// GetByID obtiene un producto con nombre de categoría y agregados de reseñas.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, product, true)
}

// Update actualiza los campos descriptivos de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
		product.NameNormalized = normalize.Fold(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.PublisherID != nil {
		product.PublisherID = in.PublisherID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, product, true)
}

// Delete elimina un producto. El borrado cascada elimina sus movimientos y reseñas.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ListFilterInput filtros del listado (texto libre, categoría, rango de precio).
type ListFilterInput struct {
	Search     string
	CategoryID *int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Limit      int
	Offset     int
}

// List lista productos con búsqueda insensible a acentos y filtros.
func (uc *ProductUseCase) List(ctx context.Context, in ListFilterInput) (*dto.ProductListResponse, error) {
	if in.PriceMin != nil && in.PriceMax != nil && in.PriceMin.GreaterThan(*in.PriceMax) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.ProductFilter{
		Search:     normalize.Fold(in.Search),
		CategoryID: in.CategoryID,
		PriceMin:   in.PriceMin,
		PriceMax:   in.PriceMax,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	list, total, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	names := uc.categoryNames(ctx)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp := baseResponse(p)
		if p.CategoryID != nil {
			resp.CategoryName = names[*p.CategoryID]
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// PriceHistogram devuelve conteos de productos por intervalo de precio [min, max].
func (uc *ProductUseCase) PriceHistogram(min, max decimal.Decimal, buckets int) (*dto.PriceHistogramResponse, error) {
	if buckets <= 0 {
		buckets = defaultHistogramBuckets
	}
	if buckets > maxHistogramBuckets {
		buckets = maxHistogramBuckets
	}
	if min.IsNegative() || !max.GreaterThan(min) {
		return nil, domain.ErrInvalidInput
	}
	raw, err := uc.repo.PriceHistogram(min, max, buckets)
	if err != nil {
		return nil, err
	}
	out := &dto.PriceHistogramResponse{Min: min, Max: max, Buckets: make([]dto.PriceBucketDTO, 0, len(raw))}
	for _, b := range raw {
		out.Buckets = append(out.Buckets, dto.PriceBucketDTO{Low: b.Low, High: b.High, Count: b.Count})
	}
	return out, nil
}

// categoryNames resuelve nombres de categoría; ante fallo de caché y BD devuelve vacío.
func (uc *ProductUseCase) categoryNames(ctx context.Context) map[int64]string {
	names, err := uc.names.Names(ctx)
	if err != nil {
		return map[int64]string{}
	}
	return names
}

func (uc *ProductUseCase) toResponse(ctx context.Context, p *entity.Product, withStats bool) (*dto.ProductResponse, error) {
	resp := baseResponse(p)
	if p.CategoryID != nil {
		resp.CategoryName = uc.categoryNames(ctx)[*p.CategoryID]
	}
	if withStats {
		stats, err := uc.reviewRepo.StatsForProduct(p.ID)
		if err != nil {
			return nil, err
		}
		resp.RatingAvg = stats.Average
		resp.RatingCount = stats.Count
	}
	return resp, nil
}

func baseResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      p.Status,
		CategoryID:  p.CategoryID,
		PublisherID: p.PublisherID,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
