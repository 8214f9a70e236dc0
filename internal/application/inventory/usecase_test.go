package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

const (
	testCompanyID   = "11111111-1111-1111-1111-111111111111"
	testUserID      = "22222222-2222-2222-2222-222222222222"
	testProductID   = "33333333-3333-3333-3333-333333333333"
	testWarehouseID = "44444444-4444-4444-4444-444444444444"
	testWarehouse2  = "55555555-5555-5555-5555-555555555555"
	testTypeIn      = "66666666-6666-6666-6666-666666666666"
	testTypeOut     = "77777777-7777-7777-7777-777777777777"
)

type registerFixture struct {
	ledger *fakeLedger
	uc     *inventory.RegisterMovementUseCase
}

func newRegisterFixture() *registerFixture {
	ledger := newFakeLedger()
	runner := &fakeTxRunner{
		ledger: ledger,
		types: &fakeMovementTypeRepo{types: map[string]*entity.MovementType{
			testTypeIn:  {ID: testTypeIn, CompanyID: testCompanyID, Name: "Compra", Direction: entity.DirectionIn, Status: true},
			testTypeOut: {ID: testTypeOut, CompanyID: testCompanyID, Name: "Venta", Direction: entity.DirectionOut, Status: true},
		}},
		products: &fakeProductRepo{products: map[string]*entity.Product{
			testProductID: {ID: testProductID, CompanyID: testCompanyID, Name: "Taladro", Status: true},
		}},
		warehouses: &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
			testWarehouseID: {ID: testWarehouseID, CompanyID: testCompanyID, Name: "Bodega Central", Status: true},
			testWarehouse2:  {ID: testWarehouse2, CompanyID: testCompanyID, Name: "Bodega Norte", Status: true},
		}},
	}
	return &registerFixture{
		ledger: ledger,
		uc:     inventory.NewRegisterMovementUseCase(runner),
	}
}

func (f *registerFixture) register(t *testing.T, movementType, warehouseID string, qty int64) (*dto.MovementResponse, error) {
	t.Helper()
	return f.uc.Register(context.Background(), testCompanyID, testUserID, dto.RegisterMovementRequest{
		ProductID:        testProductID,
		WarehouseID:      warehouseID,
		MovementType:     movementType,
		QuantityMovement: decimal.NewFromInt(qty),
	})
}

func TestRegister_AcumulaSaldoCorriente(t *testing.T) {
	f := newRegisterFixture()

	first, err := f.register(t, testTypeIn, testWarehouseID, 5)
	require.NoError(t, err)
	assert.Equal(t, "5.00", first.QuantityTotal)
	assert.Equal(t, "5.00", first.QuantityMovement)

	second, err := f.register(t, testTypeIn, testWarehouseID, 3)
	require.NoError(t, err)
	assert.Equal(t, "8.00", second.QuantityTotal)

	require.Len(t, f.ledger.movements, 2)
	assert.Greater(t, f.ledger.movements[1].Seq, f.ledger.movements[0].Seq)
}

func TestRegister_SalidaDescuentaHastaCero(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.register(t, testTypeIn, testWarehouseID, 8)
	require.NoError(t, err)

	out, err := f.register(t, testTypeOut, testWarehouseID, 8)
	require.NoError(t, err)
	assert.Equal(t, "0.00", out.QuantityTotal)
	assert.Equal(t, "8.00", out.QuantityMovement)
}

func TestRegister_RechazaSaldoInsuficiente(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.register(t, testTypeIn, testWarehouseID, 5)
	require.NoError(t, err)

	_, err = f.register(t, testTypeOut, testWarehouseID, 6)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El rechazo no deja filas nuevas en el libro.
	assert.Len(t, f.ledger.movements, 1)
	assert.Equal(t, "5", f.ledger.movements[0].QuantityTotal.String())
}

func TestRegister_SaldosPorBodegaSonIndependientes(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.register(t, testTypeIn, testWarehouseID, 10)
	require.NoError(t, err)

	// Stock en la bodega central no cubre salidas de la bodega norte.
	_, err = f.register(t, testTypeOut, testWarehouse2, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	in2, err := f.register(t, testTypeIn, testWarehouse2, 4)
	require.NoError(t, err)
	assert.Equal(t, "4.00", in2.QuantityTotal)
}

func TestRegister_SerializaEscrituraBajoLock(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.register(t, testTypeIn, testWarehouseID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.ledger.lockCalls)
}

func TestRegister_CantidadNoPositiva(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.register(t, testTypeIn, testWarehouseID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.register(t, testTypeIn, testWarehouseID, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.ledger.movements)
}

func TestRegister_ReferenciasInexistentes(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.uc.Register(context.Background(), testCompanyID, testUserID, dto.RegisterMovementRequest{
		ProductID:        "no-existe",
		WarehouseID:      testWarehouseID,
		MovementType:     testTypeIn,
		QuantityMovement: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Register(context.Background(), testCompanyID, testUserID, dto.RegisterMovementRequest{
		ProductID:        testProductID,
		WarehouseID:      "no-existe",
		MovementType:     testTypeIn,
		QuantityMovement: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Register(context.Background(), testCompanyID, testUserID, dto.RegisterMovementRequest{
		ProductID:        testProductID,
		WarehouseID:      testWarehouseID,
		MovementType:     "no-existe",
		QuantityMovement: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.ledger.movements)
}

func TestRegister_SinEmpresa(t *testing.T) {
	f := newRegisterFixture()

	_, err := f.uc.Register(context.Background(), "", testUserID, dto.RegisterMovementRequest{
		ProductID:        testProductID,
		WarehouseID:      testWarehouseID,
		MovementType:     testTypeIn,
		QuantityMovement: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNoCompany)
}
