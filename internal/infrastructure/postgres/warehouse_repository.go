package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, company_id, name, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.CompanyID, warehouse.Name, warehouse.Note,
		warehouse.Status, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, note, status, created_at, updated_at, deleted_at
		FROM warehouses WHERE company_id = $1 AND id = $2`
	if !withDeleted {
		query += ` AND deleted_at IS NULL`
	}
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Note, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepo) List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Warehouse, int, error) {
	where := ` WHERE company_id = $1 AND deleted_at IS NULL`
	args := []any{companyID}
	if search != "" {
		args = append(args, likePattern(search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("name"), len(args), unaccent("note"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM warehouses`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count warehouses: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, company_id, name, note, status, created_at, updated_at, deleted_at
		FROM warehouses` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Note, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan warehouse: %w", err)
		}
		out = append(out, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate warehouses: %w", err)
	}
	return out, total, nil
}

func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $3, note = $4, status = $5, updated_at = $6
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		warehouse.CompanyID, warehouse.ID, warehouse.Name, warehouse.Note, warehouse.Status, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE warehouses SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete warehouse: %w", err)
	}
	return nil
}
