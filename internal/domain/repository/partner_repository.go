package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// PartnerFilter filtros para listar partners.
type PartnerFilter struct {
	Search      string // nombre, tax_id o nota
	PartnerType string
	Status      *bool
}

// PartnerRepository define el puerto de persistencia para Partner.
type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Partner, error)
	List(ctx context.Context, companyID string, filter PartnerFilter, limit, offset int) ([]*entity.Partner, int, error)
	Update(ctx context.Context, partner *entity.Partner) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
