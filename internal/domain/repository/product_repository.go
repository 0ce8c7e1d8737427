package repository

import (
	"github.com/shopspring/decimal"

	"github.com/magicshop/admin-api/internal/domain/entity"
)

// ProductFilter filtros del listado de catálogo. PriceMin/PriceMax en nil = sin filtro.
type ProductFilter struct {
	Search     string // ya normalizado (sin acentos)
	CategoryID *int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Limit      int
	Offset     int
}

// PriceBucket un intervalo del histograma de precios con su conteo de productos.
type PriceBucket struct {
	Low   decimal.Decimal
	High  decimal.Decimal
	Count int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// La cantidad en stock solo se muta vía SetQuantity dentro de la transacción
// del motor de movimientos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	SetQuantity(id int64, quantity int64, status string) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	PriceHistogram(min, max decimal.Decimal, buckets int) ([]PriceBucket, error)
	Delete(id int64) error
}
