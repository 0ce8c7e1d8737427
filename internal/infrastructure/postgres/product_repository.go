package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, name_normalized, description, price, quantity, status,
		category_id, publisher_id, image_url, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, name_normalized, description, price, quantity, status,
			category_id, publisher_id, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.NameNormalized, product.Description, product.Price,
		product.Quantity, product.Status, product.CategoryID, product.PublisherID,
		product.ImageURL, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.NameNormalized, &p.Description, &p.Price, &p.Quantity,
		&p.Status, &p.CategoryID, &p.PublisherID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos descriptivos de un producto (no la cantidad).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, name_normalized = $3, description = $4, price = $5,
			category_id = $6, publisher_id = $7, image_url = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.NameNormalized, product.Description,
		product.Price, product.CategoryID, product.PublisherID, product.ImageURL,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetQuantity fija cantidad y estado derivado. Solo el motor de movimientos
// la invoca, dentro de su transacción.
func (r *ProductRepo) SetQuantity(id int64, quantity int64, status string) error {
	query := `UPDATE products SET quantity = $2, status = $3, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, status)
	if err != nil {
		return fmt.Errorf("set quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set quantity: producto %d no existe", id)
	}
	return nil
}

// List lista productos con búsqueda normalizada, filtros y total para paginar.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	pos := 1
	if filter.Search != "" {
		where += fmt.Sprintf(" AND name_normalized LIKE '%%' || $%d || '%%'", pos)
		args = append(args, filter.Search)
		pos++
	}
	if filter.CategoryID != nil {
		where += fmt.Sprintf(" AND category_id = $%d", pos)
		args = append(args, *filter.CategoryID)
		pos++
	}
	if filter.PriceMin != nil {
		where += fmt.Sprintf(" AND price >= $%d", pos)
		args = append(args, *filter.PriceMin)
		pos++
	}
	if filter.PriceMax != nil {
		where += fmt.Sprintf(" AND price <= $%d", pos)
		args = append(args, *filter.PriceMax)
		pos++
	}

	var total int
	if err := r.q.QueryRow(context.Background(), "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := "SELECT " + productColumns + " FROM products" + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.NameNormalized, &p.Description, &p.Price,
			&p.Quantity, &p.Status, &p.CategoryID, &p.PublisherID, &p.ImageURL,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// PriceHistogram cuenta productos por intervalo de precio usando width_bucket.
// Los intervalos sin productos se devuelven con conteo cero.
func (r *ProductRepo) PriceHistogram(min, max decimal.Decimal, buckets int) ([]repository.PriceBucket, error) {
	query := `
		SELECT width_bucket(price, $1, $2, $3) AS bucket, COUNT(*)
		FROM products
		WHERE price >= $1 AND price <= $2
		GROUP BY bucket`
	rows, err := r.q.Query(context.Background(), query, min, max, buckets)
	if err != nil {
		return nil, fmt.Errorf("price histogram: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int, buckets)
	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("scan histogram: %w", err)
		}
		counts[bucket] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return histogramBuckets(min, max, buckets, counts), nil
}

// histogramBuckets materializa los intervalos del histograma a partir de los
// conteos crudos de width_bucket. Los intervalos sin productos quedan en cero
// y el índice buckets+1 (price == max) se acumula en el último intervalo.
func histogramBuckets(min, max decimal.Decimal, buckets int, counts map[int]int) []repository.PriceBucket {
	filled := make(map[int]int, buckets)
	for bucket, count := range counts {
		if bucket > buckets {
			bucket = buckets
		}
		filled[bucket] += count
	}
	width := max.Sub(min).Div(decimal.NewFromInt(int64(buckets)))
	out := make([]repository.PriceBucket, 0, buckets)
	for i := 1; i <= buckets; i++ {
		low := min.Add(width.Mul(decimal.NewFromInt(int64(i - 1))))
		high := min.Add(width.Mul(decimal.NewFromInt(int64(i))))
		out = append(out, repository.PriceBucket{Low: low, High: high, Count: filled[i]})
	}
	return out
}

// Delete elimina un producto; el borrado cascada elimina movimientos y reseñas.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
