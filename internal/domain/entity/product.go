package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados del producto según su cantidad en stock.
const (
	ProductStatusAvailable  = "Available"
	ProductStatusOutOfStock = "Out of Stock"
)

// Product representa un producto del catálogo de la tienda.
// Quantity solo se muta vía el motor de movimientos; Status siempre se deriva
// de Quantity (nunca se asigna de forma independiente).
type Product struct {
	ID             int64
	Name           string
	NameNormalized string // nombre sin acentos, para búsqueda
	Description    string
	Price          decimal.Decimal
	Quantity       int64
	Status         string
	CategoryID     *int64
	PublisherID    *int64
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatusFor deriva el estado a partir de una cantidad.
func StatusFor(quantity int64) string {
	if quantity > 0 {
		return ProductStatusAvailable
	}
	return ProductStatusOutOfStock
}

// SetQuantity asigna la cantidad y recalcula el estado derivado.
func (p *Product) SetQuantity(quantity int64) {
	p.Quantity = quantity
	p.Status = StatusFor(quantity)
}
