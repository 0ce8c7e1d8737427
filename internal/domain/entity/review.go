package entity

import "time"

// Review representa una reseña de producto dejada por un cliente.
type Review struct {
	ID           int64
	ProductID    int64
	ReviewerName string
	Rating       int // 1..5
	Comment      string
	CreatedAt    time.Time
}
