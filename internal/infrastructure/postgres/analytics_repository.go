package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountOutOfStock(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE quantity = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count out of stock: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan order count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// GetRevenue suma el total de pedidos enviados o entregados en el período.
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status IN ($1, $2) AND created_at >= $3 AND created_at < $4`
	var revenue decimal.Decimal
	err := r.pool.QueryRow(ctx, query,
		entity.OrderStatusShipped, entity.OrderStatusDelivered, from, to,
	).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get revenue: %w", err)
	}
	return revenue, nil
}

func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT oi.product_id, oi.product_name, SUM(oi.quantity) AS units,
			SUM(oi.quantity * oi.unit_price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status NOT IN ($1) AND o.created_at >= $2 AND o.created_at < $3
			AND oi.product_id IS NOT NULL
		GROUP BY oi.product_id, oi.product_name
		ORDER BY units DESC
		LIMIT $4`
	rows, err := r.pool.Query(ctx, query, entity.OrderStatusCancelled, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}
