package entity

import "time"

// Publisher representa una editorial/proveedor cuyos productos se venden en la tienda.
type Publisher struct {
	ID        int64
	Name      string
	Email     string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
