package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magicshop/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estado derivado del producto
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor(t *testing.T) {
	assert.Equal(t, entity.ProductStatusAvailable, entity.StatusFor(1))
	assert.Equal(t, entity.ProductStatusAvailable, entity.StatusFor(1000))
	assert.Equal(t, entity.ProductStatusOutOfStock, entity.StatusFor(0))
}

func TestProduct_SetQuantityDerivaEstado(t *testing.T) {
	var p entity.Product
	p.SetQuantity(5)
	assert.Equal(t, entity.ProductStatusAvailable, p.Status)
	p.SetQuantity(0)
	assert.Equal(t, entity.ProductStatusOutOfStock, p.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato de código de ubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestValidLocation(t *testing.T) {
	valid := []string{"A-01-02-03", "Z9-b2-0-X", "1-2-3-4", "norte-E5-N2-P11"}
	for _, loc := range valid {
		assert.True(t, entity.ValidLocation(loc), "location %q debe ser válida", loc)
	}

	invalid := []string{"", "A-01-02", "A-01-02-03-04", "A--02-03", "A-01-02-", "-01-02-03", "A-01-02-0ñ3", "A 01 02 03"}
	for _, loc := range invalid {
		assert.False(t, entity.ValidLocation(loc), "location %q debe ser inválida", loc)
	}
}

func TestWarehouseSlot_Ocupacion(t *testing.T) {
	pid := int64(7)
	libre := entity.WarehouseSlot{Location: "A-01-01-01"}
	ocupada := entity.WarehouseSlot{Location: "B-01-01-01", ProductID: &pid}

	assert.False(t, libre.Occupied())
	assert.True(t, ocupada.Occupied())
	assert.False(t, ocupada.OccupiedByOther(7), "el mismo producto no cuenta como otro ocupante")
	assert.True(t, ocupada.OccupiedByOther(8))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipos de movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementTypeIN))
	assert.True(t, entity.ValidMovementType(entity.MovementTypeOUT))
	assert.False(t, entity.ValidMovementType("in"))
	assert.False(t, entity.ValidMovementType("TRANSFER"))
	assert.False(t, entity.ValidMovementType(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado de envío
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{entity.OrderStatusPending, entity.OrderStatusProcessing},
		{entity.OrderStatusPending, entity.OrderStatusCancelled},
		{entity.OrderStatusProcessing, entity.OrderStatusShipped},
		{entity.OrderStatusProcessing, entity.OrderStatusCancelled},
		{entity.OrderStatusShipped, entity.OrderStatusDelivered},
	}
	for _, tr := range allowed {
		assert.True(t, entity.CanTransition(tr[0], tr[1]), "%s → %s debe permitirse", tr[0], tr[1])
	}

	forbidden := [][2]string{
		{entity.OrderStatusPending, entity.OrderStatusShipped},
		{entity.OrderStatusPending, entity.OrderStatusDelivered},
		{entity.OrderStatusShipped, entity.OrderStatusCancelled},
		{entity.OrderStatusShipped, entity.OrderStatusPending},
		{entity.OrderStatusDelivered, entity.OrderStatusShipped},
		{entity.OrderStatusCancelled, entity.OrderStatusPending},
		{entity.OrderStatusProcessing, entity.OrderStatusPending},
	}
	for _, tr := range forbidden {
		assert.False(t, entity.CanTransition(tr[0], tr[1]), "%s → %s debe rechazarse", tr[0], tr[1])
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusPending))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusDelivered))
	assert.False(t, entity.ValidOrderStatus("Returned"))
	assert.False(t, entity.ValidOrderStatus(""))
}
