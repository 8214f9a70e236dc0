package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Unit, error)
	List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Unit, int, error)
	Update(ctx context.Context, unit *entity.Unit) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
