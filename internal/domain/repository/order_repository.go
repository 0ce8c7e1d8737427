package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// OrderRepository define el puerto de lectura/actualización de pedidos.
// Los pedidos los crea la tienda; el panel solo consulta y actualiza el envío.
type OrderRepository interface {
	// GetByID devuelve el pedido con sus líneas.
	GetByID(id int64) (*entity.Order, error)
	// List lista pedidos, opcionalmente filtrados por estado (vacío = todos).
	List(status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id int64, status, trackingCode string) error
}
