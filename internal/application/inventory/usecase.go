package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional
// (IN/OUT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback. Mantiene
// consistentes la cantidad del producto, la ubicación de bodega y el libro de
// movimientos: las tres mutaciones suceden juntas o ninguna.
type RecordMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// SlotLocation opcional: si viene, la ubicación se crea o reutiliza y queda
// asignada al producto con capacidad igual a la nueva cantidad.
type MovementInput struct {
	ProductID    int64
	Type         string
	Quantity     int64
	Reason       string
	SlotLocation string
}

// MovementResult confirmación de un movimiento aplicado.
type MovementResult struct {
	TransactionID string
	ProductID     int64
	NewQuantity   int64
	Status        string
	SlotID        *int64
}

// RecordMovement valida la entrada, inicia una transacción, bloquea la fila del
// producto, resuelve la ubicación de bodega, inserta el asiento en el libro y
// actualiza cantidad y estado derivado. Cualquier fallo en cualquier paso hace
// rollback completo: no queda estado parcial visible.
//
// Errores terminales (el caller debe reenviar una petición nueva):
// ErrInvalidInput, ErrNotFound, ErrInsufficientStock, ErrSlotOccupied.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	// Validaciones previas a cualquier escritura
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.SlotLocation != "" && !entity.ValidLocation(input.SlotLocation) {
		return nil, domain.ErrInvalidInput
	}

	// Validar que el producto exista antes de abrir la transacción
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()
	result := &MovementResult{TransactionID: txID, ProductID: input.ProductID}

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		slotRepo repository.SlotRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para serializar
		// movimientos concurrentes sobre el mismo producto
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newQty := locked.Quantity
		switch input.Type {
		case entity.MovementTypeIN:
			newQty += input.Quantity
		case entity.MovementTypeOUT:
			if locked.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty -= input.Quantity
		}

		slotID, err := uc.resolveSlot(slotRepo, input.ProductID, input.SlotLocation, newQty, now)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     input.ProductID,
			SlotID:        slotID,
			Type:          input.Type,
			Quantity:      input.Quantity,
			Reason:        strings.TrimSpace(input.Reason),
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		status := entity.StatusFor(newQty)
		if err := productRepo.SetQuantity(input.ProductID, newQty, status); err != nil {
			return err
		}

		result.NewQuantity = newQty
		result.Status = status
		result.SlotID = slotID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveSlot decide la ubicación del movimiento dentro de la transacción:
//   - location dada: crea o reutiliza la ubicación; falla con ErrSlotOccupied si
//     la ocupa otro producto. El producto queda como ocupante y la capacidad se
//     actualiza a la nueva cantidad. Si el producto ocupaba otra ubicación, esa
//     se libera (un producto ocupa a lo sumo una ubicación).
//   - location vacía pero el producto ya ocupa una ubicación: actualiza su capacidad.
//   - location vacía y sin ubicación previa: no hay manejo de ubicación.
func (uc *RecordMovementUseCase) resolveSlot(
	slotRepo repository.SlotRepository,
	productID int64,
	location string,
	newQty int64,
	now time.Time,
) (*int64, error) {
	if location == "" {
		current, err := slotRepo.GetByProduct(productID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		current.Capacity = newQty
		current.UpdatedAt = now
		if err := slotRepo.Update(current); err != nil {
			return nil, err
		}
		return &current.ID, nil
	}

	slot, err := slotRepo.GetByLocation(location)
	if err != nil {
		return nil, err
	}
	if slot != nil && slot.OccupiedByOther(productID) {
		return nil, domain.ErrSlotOccupied
	}

	// Liberar la ubicación anterior del producto si va a cambiar de ubicación
	previous, err := slotRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if previous != nil && (slot == nil || previous.ID != slot.ID) {
		previous.ProductID = nil
		previous.UpdatedAt = now
		if err := slotRepo.Update(previous); err != nil {
			return nil, err
		}
	}

	if slot == nil {
		slot = &entity.WarehouseSlot{
			Location:  location,
			Capacity:  newQty,
			ProductID: &productID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := slotRepo.Create(slot); err != nil {
			return nil, err
		}
		return &slot.ID, nil
	}

	slot.ProductID = &productID
	slot.Capacity = newQty
	slot.UpdatedAt = now
	if err := slotRepo.Update(slot); err != nil {
		return nil, err
	}
	return &slot.ID, nil
}
