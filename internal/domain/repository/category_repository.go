package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Category, error)
	List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Category, int, error)
	Update(ctx context.Context, category *entity.Category) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
