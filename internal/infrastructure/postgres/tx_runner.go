package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El lock de advisory que toma el repo de movimientos vive hasta el fin de la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	typeRepo repository.MovementTypeRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewInventoryMovementRepository(tx)
	typeRepo := NewMovementTypeRepository(tx)
	productRepo := NewProductRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)

	if err := fn(movRepo, typeRepo, productRepo, warehouseRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
