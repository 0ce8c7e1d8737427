package postgres

import (
	"context"
	"fmt"

	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, transaction_id, product_id, slot_id, type, quantity, reason, created_at`

// MovementRepo implementación del libro de movimientos sobre PostgreSQL.
// El libro es solo-inserción: no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra una entrada en el libro de movimientos.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (transaction_id, product_id, slot_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.TransactionID, m.ProductID, m.SlotID, m.Type, m.Quantity, m.Reason, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct historial de movimientos de un producto, del más reciente al más antiguo.
func (r *MovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	return r.scanList(query, productID, limit, offset)
}

// ListRecent últimos movimientos de todos los productos (para el tablero).
func (r *MovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements ORDER BY created_at DESC, id DESC LIMIT $1`
	return r.scanList(query, limit)
}

// SumForSlot suma las cantidades de un tipo de movimiento asociadas a una ubicación.
func (r *MovementRepo) SumForSlot(slotID int64, movementType string) (int64, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE slot_id = $1 AND type = $2`
	var sum int64
	if err := r.q.QueryRow(context.Background(), query, slotID, movementType).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum movements: %w", err)
	}
	return sum, nil
}

// CountForSlot cuenta los movimientos que referencian una ubicación.
func (r *MovementRepo) CountForSlot(slotID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM stock_movements WHERE slot_id = $1`
	if err := r.q.QueryRow(context.Background(), query, slotID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slot movements: %w", err)
	}
	return count, nil
}

func (r *MovementRepo) scanList(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.SlotID,
			&m.Type, &m.Quantity, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
