package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// supplier_id es un UUID nullable: sin proveedor viaja como NULL en la DB y
// como "" en la entidad (NULLIF al escribir, COALESCE al leer).
const productColumns = `p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code,
	p.name, p.description, p.cost_price, p.sale_price, p.availability, p.status,
	p.created_at, p.updated_at, p.deleted_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, category_id, unit_id, supplier_id, product_code,
			name, description, cost_price, sale_price, availability, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CompanyID, product.CategoryID, product.UnitID, product.SupplierID,
		product.ProductCode, product.Name, product.Description, product.CostPrice, product.SalePrice,
		product.Availability, product.Status, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto de la empresa con categoría y unidad cargadas.
func (r *ProductRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `,
			c.id, c.company_id, c.name, c.description, c.status, c.created_at, c.updated_at, c.deleted_at,
			u.id, u.company_id, u.symbol, u.description, u.status, u.created_at, u.updated_at, u.deleted_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN units u ON u.id = p.unit_id
		WHERE p.company_id = $1 AND p.id = $2`
	if !withDeleted {
		query += ` AND p.deleted_at IS NULL`
	}
	p, err := scanProductWithRelations(r.q.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos activos de la empresa con filtros, relaciones y total.
func (r *ProductRepo) List(ctx context.Context, companyID string, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	where := ` WHERE p.company_id = $1 AND p.deleted_at IS NULL`
	args := []any{companyID}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("p.name"), len(args), unaccent("p.description"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT ` + productColumns + `,
			c.id, c.company_id, c.name, c.description, c.status, c.created_at, c.updated_at, c.deleted_at,
			u.id, u.company_id, u.symbol, u.description, u.status, u.created_at, u.updated_at, u.deleted_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN units u ON u.id = p.unit_id` + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProductWithRelations(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}
	return out, total, nil
}

// Update actualiza un producto existente. No toca el stock: vive en el libro de movimientos.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $3, unit_id = $4, supplier_id = NULLIF($5, '')::uuid, product_code = $6, name = $7,
			description = $8, cost_price = $9, sale_price = $10, availability = $11, status = $12, updated_at = $13
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		product.CompanyID, product.ID,
		product.CategoryID, product.UnitID, product.SupplierID, product.ProductCode, product.Name,
		product.Description, product.CostPrice, product.SalePrice, product.Availability,
		product.Status, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SoftDelete marca el producto como eliminado. El historial de movimientos se conserva.
func (r *ProductRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}

// scanProductWithRelations escanea un producto con categoría y unidad (LEFT JOIN, pueden ser NULL).
func scanProductWithRelations(row pgx.Row) (*entity.Product, error) {
	var (
		p entity.Product

		catID, catCompany, catName, catDesc       *string
		catStatus                                 *bool
		catCreated, catUpdated, catDeleted        *time.Time
		unitID, unitCompany, unitSymbol, unitDesc *string
		unitStatus                                *bool
		unitCreated, unitUpdated, unitDeleted     *time.Time
	)
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.UnitID, &p.SupplierID, &p.ProductCode,
		&p.Name, &p.Description, &p.CostPrice, &p.SalePrice, &p.Availability, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&catID, &catCompany, &catName, &catDesc, &catStatus, &catCreated, &catUpdated, &catDeleted,
		&unitID, &unitCompany, &unitSymbol, &unitDesc, &unitStatus, &unitCreated, &unitUpdated, &unitDeleted,
	)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		p.Category = &entity.Category{
			ID: *catID, CompanyID: *catCompany, Name: *catName,
			Status: *catStatus, CreatedAt: *catCreated, UpdatedAt: *catUpdated, DeletedAt: catDeleted,
		}
		if catDesc != nil {
			p.Category.Description = *catDesc
		}
	}
	if unitID != nil {
		p.Unit = &entity.Unit{
			ID: *unitID, CompanyID: *unitCompany, Symbol: *unitSymbol,
			Status: *unitStatus, CreatedAt: *unitCreated, UpdatedAt: *unitUpdated, DeletedAt: unitDeleted,
		}
		if unitDesc != nil {
			p.Unit.Description = *unitDesc
		}
	}
	return &p, nil
}
