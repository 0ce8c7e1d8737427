package entity

import (
	"regexp"
	"time"
)

// locationPattern valida el código de ubicación: cuatro segmentos alfanuméricos
// separados por guión (zona-estante-nivel-pallet), ej. "A-01-02-03".
var locationPattern = regexp.MustCompile(`^[A-Za-z0-9]+-[A-Za-z0-9]+-[A-Za-z0-9]+-[A-Za-z0-9]+$`)

// WarehouseSlot representa una ubicación física de bodega. Cada ubicación
// almacena a lo sumo un producto, y un producto ocupa a lo sumo una ubicación.
type WarehouseSlot struct {
	ID        int64
	Location  string
	Capacity  int64
	ProductID *int64 // producto ocupante; nil = ubicación libre
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidLocation indica si el código de ubicación cumple el formato de cuatro segmentos.
func ValidLocation(location string) bool {
	return locationPattern.MatchString(location)
}

// Occupied indica si la ubicación tiene producto asignado.
func (s *WarehouseSlot) Occupied() bool {
	return s.ProductID != nil
}

// OccupiedByOther indica si la ubicación está ocupada por un producto distinto al indicado.
func (s *WarehouseSlot) OccupiedByOther(productID int64) bool {
	return s.ProductID != nil && *s.ProductID != productID
}
