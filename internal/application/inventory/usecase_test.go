package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicshop/admin-api/internal/application/inventory"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
	"github.com/magicshop/admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore estado compartido de los fakes. El fakeTxRunner trabaja sobre una
// copia y solo la vuelca al original en commit, imitando el rollback real.
type memStore struct {
	products  map[int64]*entity.Product
	slots     map[int64]*entity.WarehouseSlot
	movements []*entity.StockMovement

	nextSlotID int64
	nextMovID  int64

	failMovementCreate bool
	failSetQuantity    bool
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[int64]*entity.Product),
		slots:      make(map[int64]*entity.WarehouseSlot),
		nextSlotID: 1,
		nextMovID:  1,
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextSlotID = s.nextSlotID
	c.nextMovID = s.nextMovID
	c.failMovementCreate = s.failMovementCreate
	c.failSetQuantity = s.failSetQuantity
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, sl := range s.slots {
		cs := *sl
		if sl.ProductID != nil {
			pid := *sl.ProductID
			cs.ProductID = &pid
		}
		c.slots[id] = &cs
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	return c
}

// ── fakeProductRepo ───────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { panic("no usado en estos tests") }
func (r *fakeProductRepo) Update(p *entity.Product) error { panic("no usado en estos tests") }
func (r *fakeProductRepo) Delete(id int64) error          { panic("no usado en estos tests") }
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, int, error) {
	panic("no usado en estos tests")
}
func (r *fakeProductRepo) PriceHistogram(min, max decimal.Decimal, buckets int) ([]repository.PriceBucket, error) {
	panic("no usado en estos tests")
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) SetQuantity(id int64, quantity int64, status string) error {
	if r.s.failSetQuantity {
		return errors.New("fallo inyectado en SetQuantity")
	}
	p, ok := r.s.products[id]
	if !ok {
		return errors.New("producto no existe")
	}
	p.Quantity = quantity
	p.Status = status
	return nil
}

// ── fakeSlotRepo ──────────────────────────────────────────────────────────────

type fakeSlotRepo struct{ s *memStore }

func (r *fakeSlotRepo) Create(slot *entity.WarehouseSlot) error {
	slot.ID = r.s.nextSlotID
	r.s.nextSlotID++
	cp := *slot
	if slot.ProductID != nil {
		pid := *slot.ProductID
		cp.ProductID = &pid
	}
	r.s.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) GetByID(id int64) (*entity.WarehouseSlot, error) {
	sl, ok := r.s.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (r *fakeSlotRepo) GetByLocation(location string) (*entity.WarehouseSlot, error) {
	for _, sl := range r.s.slots {
		if sl.Location == location {
			cp := *sl
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) GetByProduct(productID int64) (*entity.WarehouseSlot, error) {
	for _, sl := range r.s.slots {
		if sl.ProductID != nil && *sl.ProductID == productID {
			cp := *sl
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) Update(slot *entity.WarehouseSlot) error {
	if _, ok := r.s.slots[slot.ID]; !ok {
		return errors.New("ubicación no existe")
	}
	cp := *slot
	if slot.ProductID != nil {
		pid := *slot.ProductID
		cp.ProductID = &pid
	}
	r.s.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) List(limit, offset int) ([]*entity.WarehouseSlot, error) {
	panic("no usado en estos tests")
}

func (r *fakeSlotRepo) Delete(id int64) error {
	delete(r.s.slots, id)
	return nil
}

// ── fakeMovementRepo ──────────────────────────────────────────────────────────

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failMovementCreate {
		return errors.New("fallo inyectado en Create")
	}
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) SumForSlot(slotID int64, movementType string) (int64, error) {
	var sum int64
	for _, m := range r.s.movements {
		if m.SlotID != nil && *m.SlotID == slotID && m.Type == movementType {
			sum += m.Quantity
		}
	}
	return sum, nil
}

func (r *fakeMovementRepo) CountForSlot(slotID int64) (int64, error) {
	var count int64
	for _, m := range r.s.movements {
		if m.SlotID != nil && *m.SlotID == slotID {
			count++
		}
	}
	return count, nil
}

// ── fakeTxRunner ──────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta fn sobre una copia del store; si fn devuelve error la
// copia se descarta (rollback), si no, reemplaza al original (commit).
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	slotRepo repository.SlotRepository,
) error) error {
	tx := t.s.clone()
	err := fn(&fakeMovementRepo{s: tx}, &fakeProductRepo{s: tx}, &fakeSlotRepo{s: tx})
	if err != nil {
		return err
	}
	*t.s = *tx
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func newUseCase(s *memStore) *inventory.RecordMovementUseCase {
	return inventory.NewRecordMovementUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s})
}

func seedProduct(s *memStore, id, quantity int64) {
	s.products[id] = &entity.Product{
		ID:       id,
		Name:     "Varita de saúco",
		Quantity: quantity,
		Status:   entity.StatusFor(quantity),
	}
}

func seedSlot(s *memStore, location string, productID *int64, capacity int64) *entity.WarehouseSlot {
	slot := &entity.WarehouseSlot{
		ID:       s.nextSlotID,
		Location: location,
		Capacity: capacity,
	}
	if productID != nil {
		pid := *productID
		slot.ProductID = &pid
	}
	s.slots[slot.ID] = slot
	s.nextSlotID++
	return slot
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de movimientos IN/OUT
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada (IN) suma stock, deja el producto disponible y asienta el
// movimiento en el libro con el ID de transacción.
func TestRecordMovement_EntradaSumaStock(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 0)
	uc := newUseCase(s)

	result, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 10, Reason: "compra inicial",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.NewQuantity)
	assert.Equal(t, entity.ProductStatusAvailable, result.Status)
	assert.NotEmpty(t, result.TransactionID)

	assert.Equal(t, int64(10), s.products[1].Quantity)
	assert.Equal(t, entity.ProductStatusAvailable, s.products[1].Status)

	require.Len(t, s.movements, 1)
	assert.Equal(t, entity.MovementTypeIN, s.movements[0].Type)
	assert.Equal(t, int64(10), s.movements[0].Quantity)
	assert.Equal(t, "compra inicial", s.movements[0].Reason)
	assert.Equal(t, result.TransactionID, s.movements[0].TransactionID)
}

// Una salida (OUT) que agota el stock deja el producto "Out of Stock".
func TestRecordMovement_SalidaAgotaStock(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 5)
	uc := newUseCase(s)

	result, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeOUT, Quantity: 5, Reason: "venta",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.NewQuantity)
	assert.Equal(t, entity.ProductStatusOutOfStock, result.Status)
	assert.Equal(t, entity.ProductStatusOutOfStock, s.products[1].Status)
}

// Una salida mayor al stock disponible se rechaza sin tocar nada.
func TestRecordMovement_StockInsuficiente(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 3)
	uc := newUseCase(s)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeOUT, Quantity: 4, Reason: "venta",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), s.products[1].Quantity, "la cantidad no debe cambiar")
	assert.Empty(t, s.movements, "no debe asentarse nada en el libro")
}

// Producto inexistente → ErrNotFound.
func TestRecordMovement_ProductoInexistente(t *testing.T) {
	s := newMemStore()
	uc := newUseCase(s)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 99, Type: entity.MovementTypeIN, Quantity: 1, Reason: "compra",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Validaciones de entrada: tipo, cantidad, razón y formato de ubicación.
func TestRecordMovement_EntradasInvalidas(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 10)
	uc := newUseCase(s)

	cases := []struct {
		name  string
		input inventory.MovementInput
	}{
		{"tipo desconocido", inventory.MovementInput{ProductID: 1, Type: "TRANSFER", Quantity: 1, Reason: "x"}},
		{"cantidad cero", inventory.MovementInput{ProductID: 1, Type: entity.MovementTypeIN, Quantity: 0, Reason: "x"}},
		{"cantidad negativa", inventory.MovementInput{ProductID: 1, Type: entity.MovementTypeIN, Quantity: -5, Reason: "x"}},
		{"razón vacía", inventory.MovementInput{ProductID: 1, Type: entity.MovementTypeIN, Quantity: 1, Reason: "   "}},
		{"ubicación con 3 segmentos", inventory.MovementInput{ProductID: 1, Type: entity.MovementTypeIN, Quantity: 1, Reason: "x", SlotLocation: "A-01-02"}},
		{"ubicación con segmento vacío", inventory.MovementInput{ProductID: 1, Type: entity.MovementTypeIN, Quantity: 1, Reason: "x", SlotLocation: "A--02-03"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordMovement(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, s.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de resolución de ubicación
// ──────────────────────────────────────────────────────────────────────────────

// Movimiento con ubicación nueva: se crea la ubicación, queda asignada al
// producto y su capacidad refleja la nueva cantidad.
func TestRecordMovement_CreaUbicacionNueva(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 0)
	uc := newUseCase(s)

	result, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 7, Reason: "compra",
		SlotLocation: "A-01-02-03",
	})
	require.NoError(t, err)
	require.NotNil(t, result.SlotID)

	slot := s.slots[*result.SlotID]
	require.NotNil(t, slot)
	assert.Equal(t, "A-01-02-03", slot.Location)
	assert.Equal(t, int64(7), slot.Capacity)
	require.NotNil(t, slot.ProductID)
	assert.Equal(t, int64(1), *slot.ProductID)

	require.Len(t, s.movements, 1)
	require.NotNil(t, s.movements[0].SlotID)
	assert.Equal(t, *result.SlotID, *s.movements[0].SlotID)
}

// Ubicación ocupada por otro producto → ErrSlotOccupied y rollback completo.
func TestRecordMovement_UbicacionOcupadaPorOtro(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 5)
	seedProduct(s, 2, 5)
	otro := int64(2)
	seedSlot(s, "B-01-01-01", &otro, 5)
	uc := newUseCase(s)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 3, Reason: "compra",
		SlotLocation: "B-01-01-01",
	})
	require.ErrorIs(t, err, domain.ErrSlotOccupied)

	assert.Equal(t, int64(5), s.products[1].Quantity, "rollback: la cantidad no debe cambiar")
	assert.Empty(t, s.movements, "rollback: el libro no debe tener asientos")
}

// Reasignar a una ubicación distinta libera la anterior: el producto ocupa a
// lo sumo una ubicación.
func TestRecordMovement_ReubicarLiberaUbicacionAnterior(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 5)
	pid := int64(1)
	previa := seedSlot(s, "A-01-01-01", &pid, 5)
	uc := newUseCase(s)

	result, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 2, Reason: "reubicación",
		SlotLocation: "C-02-02-02",
	})
	require.NoError(t, err)
	require.NotNil(t, result.SlotID)
	assert.NotEqual(t, previa.ID, *result.SlotID)

	assert.Nil(t, s.slots[previa.ID].ProductID, "la ubicación anterior debe quedar libre")
	require.NotNil(t, s.slots[*result.SlotID].ProductID)
	assert.Equal(t, int64(1), *s.slots[*result.SlotID].ProductID)
}

// Sin ubicación en la petición pero el producto ya ocupa una: se actualiza la
// capacidad de esa ubicación con la nueva cantidad.
func TestRecordMovement_SinUbicacionActualizaLaActual(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 10)
	pid := int64(1)
	slot := seedSlot(s, "D-03-03-03", &pid, 10)
	uc := newUseCase(s)

	result, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeOUT, Quantity: 4, Reason: "venta",
	})
	require.NoError(t, err)
	require.NotNil(t, result.SlotID)
	assert.Equal(t, slot.ID, *result.SlotID)
	assert.Equal(t, int64(6), s.slots[slot.ID].Capacity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de atomicidad
// ──────────────────────────────────────────────────────────────────────────────

// Si el asiento en el libro falla, la cantidad del producto y las ubicaciones
// quedan intactas: o se aplican las tres mutaciones o ninguna.
func TestRecordMovement_FalloEnLibroHaceRollback(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 5)
	s.failMovementCreate = true
	uc := newUseCase(s)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 3, Reason: "compra",
		SlotLocation: "E-01-01-01",
	})
	require.Error(t, err)

	assert.Equal(t, int64(5), s.products[1].Quantity)
	assert.Empty(t, s.movements)
	assert.Empty(t, s.slots, "la ubicación creada dentro de la tx debe descartarse")
}

// Si la actualización de cantidad falla, el asiento ya insertado se descarta.
func TestRecordMovement_FalloEnCantidadHaceRollback(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 5)
	s.failSetQuantity = true
	uc := newUseCase(s)

	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: 1, Type: entity.MovementTypeIN, Quantity: 3, Reason: "compra",
	})
	require.Error(t, err)

	assert.Equal(t, int64(5), s.products[1].Quantity)
	assert.Empty(t, s.movements)
}

// Movimientos consecutivos mantienen el libro consistente con la cantidad:
// sum(IN) - sum(OUT) == cantidad actual.
func TestRecordMovement_LibroConsistenteConCantidad(t *testing.T) {
	s := newMemStore()
	seedProduct(s, 1, 0)
	uc := newUseCase(s)

	steps := []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeIN, 10},
		{entity.MovementTypeOUT, 3},
		{entity.MovementTypeIN, 5},
		{entity.MovementTypeOUT, 12},
	}
	for _, st := range steps {
		_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
			ProductID: 1, Type: st.typ, Quantity: st.qty, Reason: "ajuste",
		})
		require.NoError(t, err)
	}

	var balance int64
	for _, m := range s.movements {
		if m.Type == entity.MovementTypeIN {
			balance += m.Quantity
		} else {
			balance -= m.Quantity
		}
	}
	assert.Equal(t, s.products[1].Quantity, balance)
	assert.Equal(t, int64(0), s.products[1].Quantity)
	assert.Equal(t, entity.ProductStatusOutOfStock, s.products[1].Status)
}
