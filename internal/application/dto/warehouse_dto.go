package dto

import "time"

// CreateSlotRequest entrada para crear una ubicación de bodega.
type CreateSlotRequest struct {
	Location string `json:"location" validate:"required"`
	Capacity int64  `json:"capacity" validate:"required,gt=0"`
}

// AssignProductRequest entrada para asignar un producto a una ubicación.
type AssignProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// UpdateCapacityRequest entrada para cambiar la capacidad de una ubicación.
type UpdateCapacityRequest struct {
	Capacity int64 `json:"capacity" validate:"required,gt=0"`
}

// SlotResponse salida de una ubicación de bodega.
type SlotResponse struct {
	ID        int64     `json:"id"`
	Location  string    `json:"location"`
	Capacity  int64     `json:"capacity"`
	ProductID *int64    `json:"product_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotListResponse lista paginada de ubicaciones.
type SlotListResponse struct {
	Items []SlotResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
