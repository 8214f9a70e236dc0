package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de saldos:
// la validación de referencias, la lectura del último saldo y la inserción de
// la nueva entrada ocurren en la misma transacción, y cualquier fallo hace
// rollback completo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		typeRepo repository.MovementTypeRepository,
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}

// StockReportGenerator genera el reporte PDF del stock actual de la empresa.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, company *entity.Company, summaries []*entity.StockSummary, generatedAt time.Time) ([]byte, error)
}
