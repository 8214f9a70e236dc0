package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Warehouse, error)
	List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Warehouse, int, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
