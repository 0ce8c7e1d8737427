package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// PublisherRepository define el puerto de persistencia para Publisher (DIP).
type PublisherRepository interface {
	Create(publisher *entity.Publisher) error
	GetByID(id int64) (*entity.Publisher, error)
	Update(publisher *entity.Publisher) error
	List(limit, offset int) ([]*entity.Publisher, error)
	Delete(id int64) error
}
