package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

type fakeReportGenerator struct {
	lastCompany   *entity.Company
	lastSummaries []*entity.StockSummary
}

func (f *fakeReportGenerator) GenerateStockReport(_ context.Context, company *entity.Company, summaries []*entity.StockSummary, _ time.Time) ([]byte, error) {
	f.lastCompany = company
	f.lastSummaries = summaries
	return []byte("%PDF-1.7"), nil
}

type stockFixture struct {
	ledger *fakeLedger
	report *fakeReportGenerator
	uc     *inventory.StockQueryUseCase
}

func newStockFixture() *stockFixture {
	ledger := newFakeLedger()
	report := &fakeReportGenerator{}
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Name: "Ferretería El Tornillo", Status: true},
	}}
	return &stockFixture{
		ledger: ledger,
		report: report,
		uc:     inventory.NewStockQueryUseCase(ledger, companies, report),
	}
}

// addMovement siembra el libro directamente, con relaciones cargadas como lo
// haría ListForStock.
func (f *stockFixture) addMovement(productID, productName, warehouseID, warehouseName string, qty int64) {
	seq := f.ledger.nextSeq
	f.ledger.nextSeq++
	f.ledger.movements = append(f.ledger.movements, &entity.InventoryMovement{
		ID:               productID + "-" + warehouseID + "-" + decimal.NewFromInt(seq).String(),
		Seq:              seq,
		CompanyID:        testCompanyID,
		ProductID:        productID,
		WarehouseID:      warehouseID,
		QuantityMovement: decimal.NewFromInt(qty),
		Product:          &entity.Product{ID: productID, CompanyID: testCompanyID, Name: productName},
		Warehouse:        &entity.Warehouse{ID: warehouseID, CompanyID: testCompanyID, Name: warehouseName},
		MovementType:     &entity.MovementType{ID: testTypeIn, Direction: entity.DirectionIn},
	})
}

func TestListStock_AgrupaPorProductoYBodega(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 10)
	f.addMovement("p1", "Taladro", "w2", "Norte", 4)
	f.addMovement("p2", "Martillo", "w1", "Central", 7)

	groups, pagination, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 2, pagination.TotalCount)

	// Los grupos salen ordenados por id de producto.
	taladro := groups[0]
	assert.Equal(t, "Taladro", taladro.Product.Name)
	assert.Equal(t, "14.00", taladro.Quantity)
	require.Len(t, taladro.QuantityPerWarehouses, 2)
	assert.Equal(t, "Central", taladro.QuantityPerWarehouses[0].Warehouse.Name)
	assert.Equal(t, "10.00", taladro.QuantityPerWarehouses[0].Quantity)
	assert.Equal(t, "Norte", taladro.QuantityPerWarehouses[1].Warehouse.Name)
	assert.Equal(t, "4.00", taladro.QuantityPerWarehouses[1].Quantity)

	martillo := groups[1]
	assert.Equal(t, "7.00", martillo.Quantity)
	require.Len(t, martillo.QuantityPerWarehouses, 1)
}

func TestListStock_OrdenaPorIDDeProducto(t *testing.T) {
	f := newStockFixture()
	// Insertado al revés del orden por id: la vista ordena por producto, no
	// por orden de llegada al libro.
	f.addMovement("p2", "Martillo", "w1", "Central", 7)
	f.addMovement("p1", "Taladro", "w1", "Central", 10)

	groups, _, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Taladro", groups[0].Product.Name)
	assert.Equal(t, "Martillo", groups[1].Product.Name)
}

func TestListStock_FiltroQuantityBelowEsEstricto(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 10)
	f.addMovement("p2", "Martillo", "w1", "Central", 3)

	below := decimal.NewFromInt(10)
	groups, pagination, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{QuantityBelow: &below})
	require.NoError(t, err)

	// 10 no es estrictamente menor que 10: solo queda el martillo.
	require.Len(t, groups, 1)
	assert.Equal(t, "Martillo", groups[0].Product.Name)
	assert.Equal(t, 1, pagination.TotalCount)

	below = decimal.NewFromInt(20)
	groups, _, err = f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{QuantityBelow: &below})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestListStock_QuantityBelowCeroNoFiltra(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 10)
	f.addMovement("p2", "Martillo", "w1", "Central", 3)

	cero := decimal.Zero
	groups, _, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{QuantityBelow: &cero})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestListStock_PaginaSobreGrupos(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 1)
	f.addMovement("p1", "Taladro", "w2", "Norte", 1)
	f.addMovement("p2", "Martillo", "w1", "Central", 1)
	f.addMovement("p3", "Sierra", "w1", "Central", 1)

	groups, pagination, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	// total_count cuenta productos agrupados, no filas del libro.
	assert.Equal(t, 3, pagination.TotalCount)
	assert.Equal(t, 2, pagination.PageCount)

	groups, _, err = f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Sierra", groups[0].Product.Name)
}

func TestListStock_FiltraPorProductoYBusqueda(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 5)
	f.addMovement("p2", "Martillo", "w1", "Central", 2)

	groups, _, err := f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{ProductID: "p2"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Martillo", groups[0].Product.Name)

	groups, _, err = f.uc.ListStock(context.Background(), testCompanyID, dto.StockRequest{Search: "tala"})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Taladro", groups[0].Product.Name)
}

func TestListStock_SinEmpresa(t *testing.T) {
	f := newStockFixture()
	_, _, err := f.uc.ListStock(context.Background(), "", dto.StockRequest{})
	assert.ErrorIs(t, err, domain.ErrNoCompany)
}

func TestReport_GeneraPDFConStockCompleto(t *testing.T) {
	f := newStockFixture()
	f.addMovement("p1", "Taladro", "w1", "Central", 5)
	f.addMovement("p2", "Martillo", "w1", "Central", 2)

	pdf, err := f.uc.Report(context.Background(), testCompanyID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.NotNil(t, f.report.lastCompany)
	assert.Equal(t, "Ferretería El Tornillo", f.report.lastCompany.Name)
	// El reporte recibe todos los grupos, sin paginar.
	assert.Len(t, f.report.lastSummaries, 2)
}

func TestReport_EmpresaInexistente(t *testing.T) {
	f := newStockFixture()
	_, err := f.uc.Report(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
