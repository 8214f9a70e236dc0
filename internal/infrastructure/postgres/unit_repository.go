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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, company_id, symbol, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		unit.ID, unit.CompanyID, unit.Symbol, unit.Description, unit.Status, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Unit, error) {
	query := `
		SELECT id, company_id, symbol, description, status, created_at, updated_at, deleted_at
		FROM units WHERE company_id = $1 AND id = $2`
	if !withDeleted {
		query += ` AND deleted_at IS NULL`
	}
	var u entity.Unit
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&u.ID, &u.CompanyID, &u.Symbol, &u.Description, &u.Status, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Unit, int, error) {
	where := ` WHERE company_id = $1 AND deleted_at IS NULL`
	args := []any{companyID}
	if search != "" {
		args = append(args, likePattern(search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("symbol"), len(args), unaccent("description"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM units`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count units: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, company_id, symbol, description, status, created_at, updated_at, deleted_at
		FROM units` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var out []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.CompanyID, &u.Symbol, &u.Description, &u.Status, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan unit: %w", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate units: %w", err)
	}
	return out, total, nil
}

func (r *UnitRepo) Update(ctx context.Context, unit *entity.Unit) error {
	query := `
		UPDATE units SET symbol = $3, description = $4, status = $5, updated_at = $6
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		unit.CompanyID, unit.ID, unit.Symbol, unit.Description, unit.Status, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE units SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete unit: %w", err)
	}
	return nil
}
