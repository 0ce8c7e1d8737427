package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

var _ repository.SlotRepository = (*SlotRepo)(nil)

const slotColumns = `id, location, capacity, product_id, created_at, updated_at`

// SlotRepo implementación del puerto SlotRepository sobre PostgreSQL.
type SlotRepo struct {
	q Querier
}

func NewSlotRepository(q Querier) *SlotRepo {
	return &SlotRepo{q: q}
}

// Create persiste una ubicación nueva. Un índice único sobre location y otro
// parcial sobre product_id garantizan unicidad y ocupación simple.
func (r *SlotRepo) Create(slot *entity.WarehouseSlot) error {
	query := `
		INSERT INTO warehouse_slots (location, capacity, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		slot.Location, slot.Capacity, slot.ProductID, slot.CreatedAt, slot.UpdatedAt,
	).Scan(&slot.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

func (r *SlotRepo) GetByID(id int64) (*entity.WarehouseSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByLocation busca por código de ubicación exacto.
func (r *SlotRepo) GetByLocation(location string) (*entity.WarehouseSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots WHERE location = $1`
	return r.scanOne(query, location)
}

// GetByProduct devuelve la ubicación que ocupa el producto, si la hay.
func (r *SlotRepo) GetByProduct(productID int64) (*entity.WarehouseSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots WHERE product_id = $1`
	return r.scanOne(query, productID)
}

func (r *SlotRepo) scanOne(query string, args ...any) (*entity.WarehouseSlot, error) {
	var s entity.WarehouseSlot
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Location, &s.Capacity, &s.ProductID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &s, nil
}

// Update guarda capacidad y ocupante actuales.
func (r *SlotRepo) Update(slot *entity.WarehouseSlot) error {
	query := `
		UPDATE warehouse_slots SET capacity = $2, product_id = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, slot.ID, slot.Capacity, slot.ProductID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update slot: %w", err)
	}
	return nil
}

// List lista ubicaciones ordenadas por código.
func (r *SlotRepo) List(limit, offset int) ([]*entity.WarehouseSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots ORDER BY location LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseSlot
	for rows.Next() {
		var s entity.WarehouseSlot
		if err := rows.Scan(&s.ID, &s.Location, &s.Capacity, &s.ProductID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una ubicación. La FK desde stock_movements respalda la
// validación del caso de uso si hay una carrera.
func (r *SlotRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouse_slots WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSlotInUse
		}
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
