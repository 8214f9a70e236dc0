package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementFilter filtros para listar entradas del libro.
type MovementFilter struct {
	Search    string // nombre de producto o nota
	ProductID string
	Start     *time.Time
	End       *time.Time
}

// StockFilter filtros para la vista agregada de stock.
type StockFilter struct {
	Search    string // nombre o descripción de producto
	ProductID string
}

// InventoryMovementRepository define el puerto del libro de movimientos.
//
// El libro es append-mostly: las entradas se crean vía Create y nunca se
// reordenan; FindLatest resuelve el saldo vigente de (producto, bodega)
// por orden de inserción descendente (seq), no por timestamp.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// GetByID carga la entrada con sus relaciones. withDeleted incluye soft-deleted.
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.InventoryMovement, error)
	// FindLatest devuelve la entrada no eliminada más reciente de la tupla
	// (empresa, producto, bodega), o nil si el libro está vacío para ella.
	FindLatest(ctx context.Context, companyID, productID, warehouseID string) (*entity.InventoryMovement, error)
	// LockTuple serializa a los escritores de la tupla durante la transacción
	// en curso. Debe invocarse sobre un repositorio atado a una tx.
	LockTuple(ctx context.Context, companyID, productID, warehouseID string) error
	List(ctx context.Context, companyID string, filter MovementFilter, limit, offset int) ([]*entity.InventoryMovement, int, error)
	ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryMovement, error)
	ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]*entity.InventoryMovement, error)
	// ListForStock devuelve todas las entradas no eliminadas de la empresa con
	// producto (categoría, unidad), bodega y tipo cargados, ordenadas por
	// producto y seq. La agregación y la paginación ocurren en memoria.
	ListForStock(ctx context.Context, companyID string, filter StockFilter) ([]*entity.InventoryMovement, error)
	Update(ctx context.Context, movement *entity.InventoryMovement) error
	SoftDelete(ctx context.Context, companyID, id string) error
	Restore(ctx context.Context, companyID, id string) error
}
