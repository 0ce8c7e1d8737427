package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// SlotRepository define el puerto de persistencia para ubicaciones de bodega.
// El registro de ubicaciones es la única fuente de verdad del mapeo
// ubicación → producto ocupante.
type SlotRepository interface {
	Create(slot *entity.WarehouseSlot) error
	GetByID(id int64) (*entity.WarehouseSlot, error)
	GetByLocation(location string) (*entity.WarehouseSlot, error)
	// GetByProduct devuelve la ubicación ocupada por el producto, o nil si no tiene.
	GetByProduct(productID int64) (*entity.WarehouseSlot, error)
	Update(slot *entity.WarehouseSlot) error
	List(limit, offset int) ([]*entity.WarehouseSlot, error)
	Delete(id int64) error
}
