package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia del libro de movimientos.
// El libro es append-only: no existen operaciones de update ni delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error)
	ListRecent(limit int) ([]*entity.StockMovement, error)
	// SumForSlot suma las cantidades de movimientos del tipo dado asociados a la ubicación.
	SumForSlot(slotID int64, movementType string) (int64, error)
	// CountForSlot cuenta los movimientos que referencian la ubicación (para validar borrado).
	CountForSlot(slotID int64) (int64, error)
}
