package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// ProductFilter filtros para listar productos.
type ProductFilter struct {
	Search     string // nombre o descripción
	CategoryID string
	Status     *bool
}

// ProductRepository define el puerto de persistencia para Product.
// Toda consulta filtra por companyID: el aislamiento de tenant se aplica en
// la capa de consulta, nunca se delega al caller.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID obtiene un producto de la empresa. withDeleted incluye soft-deleted.
	GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Product, error)
	List(ctx context.Context, companyID string, filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, companyID, id string) error
}
