package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateOrderStatusRequest entrada para actualizar el estado de envío.
// TrackingCode solo aplica al pasar a Shipped.
type UpdateOrderStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
	TrackingCode string `json:"tracking_code" validate:"omitempty,max=100"`
}

// OrderItemResponse una línea del pedido.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   *int64          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              int64               `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	ShippingAddress string              `json:"shipping_address"`
	Status          string              `json:"status"`
	TrackingCode    string              `json:"tracking_code,omitempty"`
	Total           decimal.Decimal     `json:"total"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
