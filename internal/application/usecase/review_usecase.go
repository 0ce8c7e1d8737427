package usecase

import (
	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// ReviewUseCase moderación de reseñas: listado por producto y borrado.
type ReviewUseCase struct {
	repo        repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, productRepo: productRepo}
}

// ListByProduct lista reseñas de un producto, más recientes primero.
// Devuelve nil si el producto no existe.
func (uc *ReviewUseCase) ListByProduct(productID int64, limit, offset int) (*dto.ReviewListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	list, err := uc.repo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReviewResponse{
			ID:           r.ID,
			ProductID:    r.ProductID,
			ReviewerName: r.ReviewerName,
			Rating:       r.Rating,
			Comment:      r.Comment,
			CreatedAt:    r.CreatedAt,
		})
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una reseña (moderación).
func (uc *ReviewUseCase) Delete(id int64) error {
	review, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
