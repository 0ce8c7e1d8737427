package inventory

import (
	"context"

	"github.com/magicshop/admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de movimientos: o se aplican
// cantidad, ubicación y asiento del libro juntos, o no se aplica nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		slotRepo repository.SlotRepository,
	) error) error
}
