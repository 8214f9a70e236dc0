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

var _ repository.MovementTypeRepository = (*MovementTypeRepo)(nil)

// MovementTypeRepo implementación del registro de tipos de movimiento sobre
// PostgreSQL. La dirección nunca se actualiza: Update no la incluye en el SET.
type MovementTypeRepo struct {
	q Querier
}

func NewMovementTypeRepository(q Querier) *MovementTypeRepo {
	return &MovementTypeRepo{q: q}
}

func (r *MovementTypeRepo) Create(ctx context.Context, mt *entity.MovementType) error {
	query := `
		INSERT INTO movement_types (id, company_id, name, description, direction, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		mt.ID, mt.CompanyID, mt.Name, mt.Description, mt.Direction, mt.Status, mt.CreatedAt, mt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement type: %w", err)
	}
	return nil
}

func (r *MovementTypeRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.MovementType, error) {
	query := `
		SELECT id, company_id, name, description, direction, status, created_at, updated_at, deleted_at
		FROM movement_types WHERE company_id = $1 AND id = $2`
	if !withDeleted {
		query += ` AND deleted_at IS NULL`
	}
	var mt entity.MovementType
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&mt.ID, &mt.CompanyID, &mt.Name, &mt.Description, &mt.Direction,
		&mt.Status, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement type: %w", err)
	}
	return &mt, nil
}

func (r *MovementTypeRepo) List(ctx context.Context, companyID string, filter repository.MovementTypeFilter, limit, offset int) ([]*entity.MovementType, int, error) {
	where := ` WHERE company_id = $1 AND deleted_at IS NULL`
	args := []any{companyID}
	if filter.Direction != "" {
		args = append(args, filter.Direction)
		where += fmt.Sprintf(" AND direction = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("name"), len(args), unaccent("description"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movement_types`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movement types: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, company_id, name, description, direction, status, created_at, updated_at, deleted_at
		FROM movement_types` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movement types: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovementType
	for rows.Next() {
		var mt entity.MovementType
		err := rows.Scan(
			&mt.ID, &mt.CompanyID, &mt.Name, &mt.Description, &mt.Direction,
			&mt.Status, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement type: %w", err)
		}
		out = append(out, &mt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate movement types: %w", err)
	}
	return out, total, nil
}

// Update actualiza nombre, descripción y estado. La dirección queda fuera del
// SET a propósito: es inmutable a nivel de persistencia.
func (r *MovementTypeRepo) Update(ctx context.Context, mt *entity.MovementType) error {
	query := `
		UPDATE movement_types SET name = $3, description = $4, status = $5, updated_at = $6
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		mt.CompanyID, mt.ID, mt.Name, mt.Description, mt.Status, mt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update movement type: %w", err)
	}
	return nil
}

func (r *MovementTypeRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE movement_types SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete movement type: %w", err)
	}
	return nil
}
