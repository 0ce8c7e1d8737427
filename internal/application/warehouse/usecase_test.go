package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicshop/admin-api/internal/application/dto"
	"github.com/magicshop/admin-api/internal/application/warehouse"
	"github.com/magicshop/admin-api/internal/domain"
	"github.com/magicshop/admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSlotRepo struct {
	slots  map[int64]*entity.WarehouseSlot
	nextID int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[int64]*entity.WarehouseSlot), nextID: 1}
}

func (r *fakeSlotRepo) Create(slot *entity.WarehouseSlot) error {
	slot.ID = r.nextID
	r.nextID++
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) GetByID(id int64) (*entity.WarehouseSlot, error) {
	sl, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (r *fakeSlotRepo) GetByLocation(location string) (*entity.WarehouseSlot, error) {
	for _, sl := range r.slots {
		if sl.Location == location {
			cp := *sl
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) GetByProduct(productID int64) (*entity.WarehouseSlot, error) {
	for _, sl := range r.slots {
		if sl.ProductID != nil && *sl.ProductID == productID {
			cp := *sl
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) Update(slot *entity.WarehouseSlot) error {
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) List(limit, offset int) ([]*entity.WarehouseSlot, error) {
	var out []*entity.WarehouseSlot
	for _, sl := range r.slots {
		cp := *sl
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(id int64) error {
	delete(r.slots, id)
	return nil
}

// fakeMovementSums simula el libro: solo las agregaciones que usa este caso de uso.
type fakeMovementSums struct {
	inBySlot    map[int64]int64
	countBySlot map[int64]int64
}

func newFakeMovementSums() *fakeMovementSums {
	return &fakeMovementSums{inBySlot: make(map[int64]int64), countBySlot: make(map[int64]int64)}
}

func (r *fakeMovementSums) Create(*entity.StockMovement) error { panic("no usado") }
func (r *fakeMovementSums) ListByProduct(int64, int, int) ([]*entity.StockMovement, error) {
	panic("no usado")
}
func (r *fakeMovementSums) ListRecent(int) ([]*entity.StockMovement, error) { panic("no usado") }

func (r *fakeMovementSums) SumForSlot(slotID int64, movementType string) (int64, error) {
	if movementType == entity.MovementTypeIN {
		return r.inBySlot[slotID], nil
	}
	return 0, nil
}

func (r *fakeMovementSums) CountForSlot(slotID int64) (int64, error) {
	return r.countBySlot[slotID], nil
}

func newRegistry() (*warehouse.SlotRegistryUseCase, *fakeSlotRepo, *fakeMovementSums) {
	slots := newFakeSlotRepo()
	movs := newFakeMovementSums()
	return warehouse.NewSlotRegistryUseCase(slots, movs), slots, movs
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSlot_FormatoValido(t *testing.T) {
	uc, _, _ := newRegistry()

	out, err := uc.CreateSlot(dto.CreateSlotRequest{Location: "A-01-02-03", Capacity: 50})
	require.NoError(t, err)
	assert.Equal(t, "A-01-02-03", out.Location)
	assert.Equal(t, int64(50), out.Capacity)
	assert.Nil(t, out.ProductID, "una ubicación recién creada debe estar libre")
}

func TestCreateSlot_FormatoInvalido(t *testing.T) {
	uc, _, _ := newRegistry()

	cases := []string{
		"A-01-02",       // 3 segmentos
		"A-01-02-03-04", // 5 segmentos
		"A--02-03",      // segmento vacío
		"A-01-02-0_3",   // caracter no alfanumérico
		"",              // vacío
	}
	for _, loc := range cases {
		_, err := uc.CreateSlot(dto.CreateSlotRequest{Location: loc, Capacity: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "location %q debe rechazarse", loc)
	}
}

func TestCreateSlot_Duplicada(t *testing.T) {
	uc, _, _ := newRegistry()

	_, err := uc.CreateSlot(dto.CreateSlotRequest{Location: "A-01-02-03", Capacity: 10})
	require.NoError(t, err)
	_, err = uc.CreateSlot(dto.CreateSlotRequest{Location: "A-01-02-03", Capacity: 20})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ocupación simple
// ──────────────────────────────────────────────────────────────────────────────

// Una ubicación almacena a lo sumo un producto.
func TestAssignProduct_UbicacionOcupada(t *testing.T) {
	uc, slots, _ := newRegistry()
	otro := int64(2)
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10, ProductID: &otro})

	_, err := uc.AssignProduct(1, 7)
	assert.ErrorIs(t, err, domain.ErrSlotOccupied)
}

// Un producto ocupa a lo sumo una ubicación.
func TestAssignProduct_ProductoYaUbicado(t *testing.T) {
	uc, slots, _ := newRegistry()
	pid := int64(7)
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10, ProductID: &pid})
	slots.Create(&entity.WarehouseSlot{Location: "B-01-01-01", Capacity: 10})

	_, err := uc.AssignProduct(2, 7)
	assert.ErrorIs(t, err, domain.ErrProductSlotted)
}

// Reasignar el mismo producto a su propia ubicación es idempotente.
func TestAssignProduct_MismoProductoEsIdempotente(t *testing.T) {
	uc, slots, _ := newRegistry()
	pid := int64(7)
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10, ProductID: &pid})

	out, err := uc.AssignProduct(1, 7)
	require.NoError(t, err)
	require.NotNil(t, out.ProductID)
	assert.Equal(t, int64(7), *out.ProductID)
}

func TestUnassignProduct_LiberaUbicacion(t *testing.T) {
	uc, slots, _ := newRegistry()
	pid := int64(7)
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10, ProductID: &pid})

	out, err := uc.UnassignProduct(1)
	require.NoError(t, err)
	assert.Nil(t, out.ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de capacidad y borrado
// ──────────────────────────────────────────────────────────────────────────────

// La capacidad puede crecer libremente, pero no reducirse por debajo de las
// entradas (IN) ya registradas contra la ubicación.
func TestUpdateCapacity_PisoDeEntradasRegistradas(t *testing.T) {
	uc, slots, movs := newRegistry()
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 100})
	movs.inBySlot[1] = 40

	out, err := uc.UpdateCapacity(1, 60)
	require.NoError(t, err)
	assert.Equal(t, int64(60), out.Capacity)

	_, err = uc.UpdateCapacity(1, 39)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowUsage)

	out, err = uc.UpdateCapacity(1, 40)
	require.NoError(t, err, "reducir exactamente al piso debe permitirse")
	assert.Equal(t, int64(40), out.Capacity)
}

func TestUpdateCapacity_CapacidadNoPositiva(t *testing.T) {
	uc, slots, _ := newRegistry()
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10})

	_, err := uc.UpdateCapacity(1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una ubicación referenciada por el libro de movimientos no puede eliminarse.
func TestDeleteSlot_ConMovimientosRegistrados(t *testing.T) {
	uc, slots, movs := newRegistry()
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10})
	movs.countBySlot[1] = 3

	err := uc.DeleteSlot(1)
	assert.ErrorIs(t, err, domain.ErrSlotInUse)
}

func TestDeleteSlot_SinMovimientos(t *testing.T) {
	uc, slots, _ := newRegistry()
	slots.Create(&entity.WarehouseSlot{Location: "A-01-01-01", Capacity: 10})

	require.NoError(t, uc.DeleteSlot(1))
	out, err := uc.GetSlot(1)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDeleteSlot_Inexistente(t *testing.T) {
	uc, _, _ := newRegistry()
	assert.ErrorIs(t, uc.DeleteSlot(99), domain.ErrNotFound)
}
