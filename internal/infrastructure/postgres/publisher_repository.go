package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.PublisherRepository = (*PublisherRepo)(nil)

// PublisherRepo implementación del puerto PublisherRepository sobre PostgreSQL.
type PublisherRepo struct {
	pool *pgxpool.Pool
}

func NewPublisherRepository(pool *pgxpool.Pool) *PublisherRepo {
	return &PublisherRepo{pool: pool}
}

func (r *PublisherRepo) Create(publisher *entity.Publisher) error {
	query := `
		INSERT INTO publishers (name, email, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		publisher.Name, publisher.Email, publisher.Website, publisher.CreatedAt, publisher.UpdatedAt,
	).Scan(&publisher.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert publisher: %w", err)
	}
	return nil
}

func (r *PublisherRepo) GetByID(id int64) (*entity.Publisher, error) {
	query := `SELECT id, name, email, website, created_at, updated_at FROM publishers WHERE id = $1`
	var p entity.Publisher
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Email, &p.Website, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get publisher: %w", err)
	}
	return &p, nil
}

func (r *PublisherRepo) Update(publisher *entity.Publisher) error {
	query := `UPDATE publishers SET name = $2, email = $3, website = $4, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		publisher.ID, publisher.Name, publisher.Email, publisher.Website)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update publisher: %w", err)
	}
	return nil
}

func (r *PublisherRepo) List(limit, offset int) ([]*entity.Publisher, error) {
	query := `SELECT id, name, email, website, created_at, updated_at
		FROM publishers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Publisher
	for rows.Next() {
		var p entity.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan publisher: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PublisherRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM publishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete publisher: %w", err)
	}
	return nil
}
