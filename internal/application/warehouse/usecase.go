// Package warehouse contiene el registro de ubicaciones de bodega: la única
// fuente de verdad del mapeo código de ubicación → producto ocupante.
package warehouse

import (
	"time"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// SlotRegistryUseCase operaciones administrativas sobre ubicaciones de bodega.
// Invariante que mantiene este componente: un producto ocupa a lo sumo una
// ubicación (pre-check aquí, respaldado por un índice único parcial en la BD).
type SlotRegistryUseCase struct {
	slotRepo repository.SlotRepository
	movRepo  repository.MovementRepository
}

// NewSlotRegistryUseCase construye el caso de uso.
func NewSlotRegistryUseCase(slotRepo repository.SlotRepository, movRepo repository.MovementRepository) *SlotRegistryUseCase {
	return &SlotRegistryUseCase{slotRepo: slotRepo, movRepo: movRepo}
}

// CreateSlot crea una ubicación libre. Falla si el código no cumple el formato
// de cuatro segmentos o si ya existe.
func (uc *SlotRegistryUseCase) CreateSlot(in dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if !entity.ValidLocation(in.Location) {
		return nil, domain.ErrInvalidInput
	}
	if in.Capacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.slotRepo.GetByLocation(in.Location)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	slot := &entity.WarehouseSlot{
		Location:  in.Location,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.slotRepo.Create(slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// GetSlot obtiene una ubicación por ID.
func (uc *SlotRegistryUseCase) GetSlot(id int64) (*dto.SlotResponse, error) {
	slot, err := uc.slotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, nil
	}
	return toSlotResponse(slot), nil
}

// ListSlots lista ubicaciones con paginación.
func (uc *SlotRegistryUseCase) ListSlots(limit, offset int) (*dto.SlotListResponse, error) {
	list, err := uc.slotRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SlotResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSlotResponse(s))
	}
	return &dto.SlotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AssignProduct asigna un producto como ocupante de la ubicación. Falla si la
// ubicación ya tiene otro ocupante o si el producto ocupa otra ubicación.
func (uc *SlotRegistryUseCase) AssignProduct(slotID, productID int64) (*dto.SlotResponse, error) {
	slot, err := uc.slotRepo.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.ErrNotFound
	}
	if slot.OccupiedByOther(productID) {
		return nil, domain.ErrSlotOccupied
	}
	other, err := uc.slotRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != slot.ID {
		return nil, domain.ErrProductSlotted
	}
	slot.ProductID = &productID
	slot.UpdatedAt = time.Now()
	if err := uc.slotRepo.Update(slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// UnassignProduct libera la ubicación (sin ocupante).
func (uc *SlotRegistryUseCase) UnassignProduct(slotID int64) (*dto.SlotResponse, error) {
	slot, err := uc.slotRepo.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.ErrNotFound
	}
	slot.ProductID = nil
	slot.UpdatedAt = time.Now()
	if err := uc.slotRepo.Update(slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// UpdateCapacity cambia la capacidad de la ubicación. No permite reducirla por
// debajo de la suma de entradas (IN) registradas contra la ubicación en el libro.
func (uc *SlotRegistryUseCase) UpdateCapacity(slotID, newCapacity int64) (*dto.SlotResponse, error) {
	if newCapacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	slot, err := uc.slotRepo.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, domain.ErrNotFound
	}
	inTotal, err := uc.movRepo.SumForSlot(slotID, entity.MovementTypeIN)
	if err != nil {
		return nil, err
	}
	if newCapacity < inTotal {
		return nil, domain.ErrCapacityBelowUsage
	}
	slot.Capacity = newCapacity
	slot.UpdatedAt = time.Now()
	if err := uc.slotRepo.Update(slot); err != nil {
		return nil, err
	}
	return toSlotResponse(slot), nil
}

// DeleteSlot elimina una ubicación. Falla si el libro de movimientos la referencia.
func (uc *SlotRegistryUseCase) DeleteSlot(slotID int64) error {
	slot, err := uc.slotRepo.GetByID(slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountForSlot(slotID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrSlotInUse
	}
	return uc.slotRepo.Delete(slotID)
}

func toSlotResponse(s *entity.WarehouseSlot) *dto.SlotResponse {
	if s == nil {
		return nil
	}
	return &dto.SlotResponse{
		ID:        s.ID,
		Location:  s.Location,
		Capacity:  s.Capacity,
		ProductID: s.ProductID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
