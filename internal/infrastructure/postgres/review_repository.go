package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

func (r *ReviewRepo) GetByID(id int64) (*entity.Review, error) {
	query := `SELECT id, product_id, reviewer_name, rating, comment, created_at
		FROM reviews WHERE id = $1`
	var rv entity.Review
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rv.ID, &rv.ProductID, &rv.ReviewerName, &rv.Rating, &rv.Comment, &rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rv, nil
}

func (r *ReviewRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.Review, error) {
	query := `SELECT id, product_id, reviewer_name, rating, comment, created_at
		FROM reviews WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.ReviewerName, &rv.Rating,
			&rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// StatsForProduct promedio y conteo de reseñas; cero si no hay reseñas.
func (r *ReviewRepo) StatsForProduct(productID int64) (repository.ReviewStats, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE product_id = $1`
	var stats repository.ReviewStats
	err := r.pool.QueryRow(context.Background(), query, productID).Scan(&stats.Average, &stats.Count)
	if err != nil {
		return repository.ReviewStats{}, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}

func (r *ReviewRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
