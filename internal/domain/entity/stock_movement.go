package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement representa una entrada del libro de movimientos (append-only).
// Nunca se actualiza ni se borra por operación normal; la suma firmada de
// entradas menos salidas de un producto debe igualar su cantidad actual.
type StockMovement struct {
	ID            int64
	TransactionID string // UUID de la transacción de movimiento
	ProductID     int64
	SlotID        *int64 // ubicación de bodega asociada; nil si no aplica
	Type          string
	Quantity      int64 // siempre positiva; el signo lo da Type
	Reason        string
	CreatedAt     time.Time
}

// ValidMovementType indica si el tipo es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}
