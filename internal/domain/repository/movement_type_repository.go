package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// MovementTypeFilter filtros para listar tipos de movimiento.
type MovementTypeFilter struct {
	Search    string // nombre o descripción
	Direction string // in | out
	Status    *bool
}

// MovementTypeRepository define el puerto del registro de tipos de movimiento.
// El motor de saldos lo consulta como autoridad para resolver la dirección de
// cada movimiento; la dirección es inmutable por id.
type MovementTypeRepository interface {
	Create(ctx context.Context, mt *entity.MovementType) error
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.MovementType, error)
	List(ctx context.Context, companyID string, filter MovementTypeFilter, limit, offset int) ([]*entity.MovementType, int, error)
	Update(ctx context.Context, mt *entity.MovementType) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
