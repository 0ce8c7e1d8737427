package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// SlotLocation es opcional: si viene, la ubicación se crea o reutiliza y queda
// asignada al producto.
type RegisterMovementRequest struct {
	ProductID    int64  `json:"product_id" validate:"required,gt=0"`
	Type         string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
	Reason       string `json:"reason" validate:"required,min=1,max=500"`
	SlotLocation string `json:"slot_location,omitempty"`
}

// RegisterMovementResponse confirmación de un movimiento registrado.
type RegisterMovementResponse struct {
	ProductID     int64  `json:"product_id"`
	TransactionID string `json:"transaction_id"`
	NewQuantity   int64  `json:"new_quantity"`
	Status        string `json:"status"`
	SlotID        *int64 `json:"slot_id,omitempty"`
	Message       string `json:"message"`
}

// MovementResponse una entrada del libro de movimientos.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ProductID     int64     `json:"product_id"`
	SlotID        *int64    `json:"slot_id,omitempty"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos (orden descendente por fecha).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
