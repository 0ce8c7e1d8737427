package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de envío de un pedido.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// shippingTransitions define las transiciones de estado permitidas.
// Delivered y Cancelled son terminales.
var shippingTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// Order representa un pedido de cliente con su estado de envío.
type Order struct {
	ID              int64
	OrderNumber     string // UUID visible al cliente
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Status          string
	TrackingCode    string
	Total           decimal.Decimal
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem es una línea del pedido. ProductName se copia al crear el pedido
// para que el histórico no cambie si el producto se renombra o elimina.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   *int64
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// ValidOrderStatus indica si el estado es uno de los conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition indica si el paso de from a to está permitido.
func CanTransition(from, to string) bool {
	for _, next := range shippingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
