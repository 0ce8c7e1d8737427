package entity

import "time"

// Roles de usuario administrador.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa un usuario del panel de administración.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
