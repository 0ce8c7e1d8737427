package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo de la consulta de productos más vendidos.
type TopProductResult struct {
	ProductID   int64
	ProductName string
	UnitsSold   int64
	Revenue     decimal.Decimal
}

// AnalyticsRepository consultas read-only para el dashboard del panel.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountOutOfStock(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context) (map[string]int, error)
	// GetRevenue suma el total de pedidos enviados/entregados en el período.
	GetRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)
}
