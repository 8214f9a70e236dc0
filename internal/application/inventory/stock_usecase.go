package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// StockQueryUseCase responde consultas de stock actual reduciendo el libro de
// movimientos a una fila por producto, con desglose por bodega. Solo lee:
// nunca muta el libro.
type StockQueryUseCase struct {
	movRepo     repository.InventoryMovementRepository
	companyRepo repository.CompanyRepository
	report      StockReportGenerator
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(movRepo repository.InventoryMovementRepository, companyRepo repository.CompanyRepository, report StockReportGenerator) *StockQueryUseCase {
	return &StockQueryUseCase{movRepo: movRepo, companyRepo: companyRepo, report: report}
}

// ListStock agrupa los movimientos no eliminados de la empresa por producto y
// bodega, filtra por quantity_below y pagina el resultado agrupado.
//
// La cifra por bodega es la suma de quantity_movement (agregado de
// presentación); el total del producto es la suma de las bodegas. La
// paginación se aplica después de agrupar y filtrar: total_count cuenta
// grupos, no filas crudas.
func (uc *StockQueryUseCase) ListStock(ctx context.Context, companyID string, in dto.StockRequest) ([]*dto.StockSummaryResponse, dto.Pagination, error) {
	if companyID == "" {
		return nil, dto.Pagination{}, domain.ErrNoCompany
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 25
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}

	groups, err := uc.aggregate(ctx, companyID, repository.StockFilter{
		Search:    in.Search,
		ProductID: in.ProductID,
	})
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	// Filtro quantity_below: estrictamente menor, comparando sobre el valor
	// formateado a 2 decimales (misma cifra que ve el cliente). Un umbral de
	// cero equivale a no filtrar.
	if in.QuantityBelow != nil && !in.QuantityBelow.IsZero() {
		filtered := groups[:0]
		for _, g := range groups {
			if g.Quantity.Round(2).LessThan(*in.QuantityBelow) {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}

	total := len(groups)
	pagination := dto.NewPagination(page, limit, total)
	offset := pagination.Offset()
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]*dto.StockSummaryResponse, 0, end-offset)
	for _, g := range groups[offset:end] {
		out = append(out, dto.ToStockSummaryResponse(g))
	}
	return out, pagination, nil
}

// Report genera el PDF con el stock actual completo de la empresa (sin
// paginar), en el mismo agrupamiento que ListStock.
func (uc *StockQueryUseCase) Report(ctx context.Context, companyID string) ([]byte, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	groups, err := uc.aggregate(ctx, companyID, repository.StockFilter{})
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, company, groups, time.Now())
}

// aggregate reduce las entradas del libro a un grupo por producto, con
// sub-grupos por bodega, preservando el orden por producto del repositorio.
func (uc *StockQueryUseCase) aggregate(ctx context.Context, companyID string, filter repository.StockFilter) ([]*entity.StockSummary, error) {
	movements, err := uc.movRepo.ListForStock(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	var order []string
	byProduct := make(map[string]*entity.StockSummary)
	whIndex := make(map[string]map[string]int) // productID -> warehouseID -> índice en PerWarehouse

	for _, m := range movements {
		group, ok := byProduct[m.ProductID]
		if !ok {
			group = &entity.StockSummary{
				MovementID:   m.ID,
				MovementType: m.MovementType,
				FirstCreated: m.CreatedAt,
				FirstUpdated: m.UpdatedAt,
			}
			if m.Product != nil {
				group.Product = *m.Product
			}
			byProduct[m.ProductID] = group
			whIndex[m.ProductID] = make(map[string]int)
			order = append(order, m.ProductID)
		}
		idx, ok := whIndex[m.ProductID][m.WarehouseID]
		if !ok {
			ws := entity.WarehouseStock{}
			if m.Warehouse != nil {
				ws.Warehouse = *m.Warehouse
			}
			group.PerWarehouse = append(group.PerWarehouse, ws)
			idx = len(group.PerWarehouse) - 1
			whIndex[m.ProductID][m.WarehouseID] = idx
		}
		group.PerWarehouse[idx].Quantity = group.PerWarehouse[idx].Quantity.Add(m.QuantityMovement)
	}

	groups := make([]*entity.StockSummary, 0, len(order))
	for _, productID := range order {
		g := byProduct[productID]
		for _, ws := range g.PerWarehouse {
			g.Quantity = g.Quantity.Add(ws.Quantity)
		}
		groups = append(groups, g)
	}
	return groups, nil
}
