package repository

import "github.com/magicshop/admin-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios del panel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
