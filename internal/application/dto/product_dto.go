package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	PublisherID *int64          `json:"publisher_id,omitempty"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos nil no se tocan.
// La cantidad no es editable por esta vía: solo el motor de movimientos la muta.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *int64           `json:"category_id,omitempty"`
	PublisherID *int64           `json:"publisher_id,omitempty"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	Status       string          `json:"status"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	PublisherID  *int64          `json:"publisher_id,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	RatingAvg    float64         `json:"rating_avg"`
	RatingCount  int             `json:"rating_count"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PriceBucketDTO un intervalo del histograma de precios.
type PriceBucketDTO struct {
	Low   decimal.Decimal `json:"low"`
	High  decimal.Decimal `json:"high"`
	Count int             `json:"count"`
}

// PriceHistogramResponse respuesta del histograma de precios del catálogo.
type PriceHistogramResponse struct {
	Min     decimal.Decimal  `json:"min"`
	Max     decimal.Decimal  `json:"max"`
	Buckets []PriceBucketDTO `json:"buckets"`
}
