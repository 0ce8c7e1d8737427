package inventory

import (
	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// LedgerUseCase lecturas del libro de movimientos (solo consulta, sin cursor
// retenido entre llamadas).
type LedgerUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo, productRepo: productRepo}
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
// Devuelve nil si el producto no existe.
func (uc *LedgerUseCase) ListByProduct(productID int64, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.MovementListResponse{
		Items: ToMovementResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListRecent lista los últimos movimientos de toda la bodega.
func (uc *LedgerUseCase) ListRecent(limit int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(list), nil
}

// ToMovementResponses convierte entidades del libro a DTOs.
func ToMovementResponses(list []*entity.StockMovement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			SlotID:        m.SlotID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Reason:        m.Reason,
			CreatedAt:     m.CreatedAt,
		})
	}
	return items
}
