package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// ReviewStats agregados de reseñas de un producto.
type ReviewStats struct {
	Average float64
	Count   int
}

// ReviewRepository define el puerto de persistencia para reseñas.
type ReviewRepository interface {
	GetByID(id int64) (*entity.Review, error)
	ListByProduct(productID int64, limit, offset int) ([]*entity.Review, error)
	StatsForProduct(productID int64) (ReviewStats, error)
	Delete(id int64) error
}
