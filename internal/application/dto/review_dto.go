package dto

import "time"

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewListResponse lista paginada de reseñas de un producto.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
