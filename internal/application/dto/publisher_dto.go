package dto

import "time"

// CreatePublisherRequest entrada para crear una editorial.
type CreatePublisherRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Website string `json:"website" validate:"omitempty,url"`
}

// UpdatePublisherRequest entrada para actualizar una editorial.
type UpdatePublisherRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Website *string `json:"website" validate:"omitempty,url"`
}

// PublisherResponse salida de una editorial.
type PublisherResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublisherListResponse lista paginada de editoriales.
type PublisherListResponse struct {
	Items []PublisherResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
