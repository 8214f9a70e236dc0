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

type movementsFixture struct {
	ledger *fakeLedger
	uc     *inventory.MovementQueryUseCase
}

func newMovementsFixture() *movementsFixture {
	ledger := newFakeLedger()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, CompanyID: testCompanyID, Name: "Taladro", Status: true},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testWarehouseID: {ID: testWarehouseID, CompanyID: testCompanyID, Name: "Bodega Central", Status: true},
	}}
	return &movementsFixture{
		ledger: ledger,
		uc:     inventory.NewMovementQueryUseCase(ledger, products, warehouses),
	}
}

func (f *movementsFixture) seed(id string, qtyMovement, qtyTotal int64) *entity.InventoryMovement {
	m := &entity.InventoryMovement{
		ID:               id,
		Seq:              f.ledger.nextSeq,
		CompanyID:        testCompanyID,
		ProductID:        testProductID,
		WarehouseID:      testWarehouseID,
		MovementTypeID:   testTypeIn,
		QuantityMovement: decimal.NewFromInt(qtyMovement),
		QuantityTotal:    decimal.NewFromInt(qtyTotal),
		Status:           entity.MovementStatusActive,
	}
	f.ledger.nextSeq++
	f.ledger.movements = append(f.ledger.movements, m)
	return m
}

func TestMovements_GetStockDevuelveSaldoVigente(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)
	f.seed("m2", 3, 8)

	stock, err := f.uc.GetStock(context.Background(), testCompanyID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, "8.00", stock.CurrentStock)
	require.NotNil(t, stock.LastMovement)
	assert.Equal(t, "m2", stock.LastMovement.ID)
}

func TestMovements_GetStockLibroVacio(t *testing.T) {
	f := newMovementsFixture()

	stock, err := f.uc.GetStock(context.Background(), testCompanyID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", stock.CurrentStock)
	assert.Nil(t, stock.LastMovement)
}

func TestMovements_UpdateNoRecalculaSaldos(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)
	f.seed("m2", 3, 8)

	notes := "ajuste de nota"
	updated, err := f.uc.Update(context.Background(), testCompanyID, "m1", dto.UpdateMovementRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "ajuste de nota", updated.Notes)

	// Los saldos históricos quedan intactos, incluido el de la entrada editada.
	assert.Equal(t, "5.00", updated.QuantityTotal)
	assert.Equal(t, "8", f.ledger.movements[1].QuantityTotal.String())
}

func TestMovements_SoftDeleteDesplazaElSaldoVigente(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)
	f.seed("m2", 3, 8)

	require.NoError(t, f.uc.SoftDelete(context.Background(), testCompanyID, "m2"))

	// Con la última entrada eliminada, el saldo vigente cae a la anterior.
	stock, err := f.uc.GetStock(context.Background(), testCompanyID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", stock.CurrentStock)
}

func TestMovements_RestoreRecuperaLaEntrada(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)
	require.NoError(t, f.uc.SoftDelete(context.Background(), testCompanyID, "m1"))

	restored, err := f.uc.Restore(context.Background(), testCompanyID, "m1")
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)

	stock, err := f.uc.GetStock(context.Background(), testCompanyID, testProductID, testWarehouseID)
	require.NoError(t, err)
	assert.Equal(t, "5.00", stock.CurrentStock)
}

func TestMovements_RestoreEntradaActiva(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)

	_, err := f.uc.Restore(context.Background(), testCompanyID, "m1")
	assert.ErrorIs(t, err, domain.ErrNotDeleted)
}

func TestMovements_ListPaginaMasRecientesPrimero(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 1, 1)
	f.seed("m2", 1, 2)
	f.seed("m3", 1, 3)

	list, pagination, err := f.uc.List(context.Background(), testCompanyID, dto.ListMovementsRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m3", list[0].ID)
	assert.Equal(t, "m2", list[1].ID)
	assert.Equal(t, 3, pagination.TotalCount)
	assert.Equal(t, 2, pagination.PageCount)
}

func TestMovements_GetByIDDeOtraEmpresa(t *testing.T) {
	f := newMovementsFixture()
	f.seed("m1", 5, 5)

	_, err := f.uc.GetByID(context.Background(), "88888888-8888-8888-8888-888888888888", "m1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
