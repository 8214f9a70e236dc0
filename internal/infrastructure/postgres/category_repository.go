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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.CompanyID, category.Name, category.Description,
		category.Status, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Category, error) {
	query := `
		SELECT id, company_id, name, description, status, created_at, updated_at, deleted_at
		FROM categories WHERE company_id = $1 AND id = $2`
	if !withDeleted {
		query += ` AND deleted_at IS NULL`
	}
	var c entity.Category
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context, companyID, search string, limit, offset int) ([]*entity.Category, int, error) {
	where := ` WHERE company_id = $1 AND deleted_at IS NULL`
	args := []any{companyID}
	if search != "" {
		args = append(args, likePattern(search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("name"), len(args), unaccent("description"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, company_id, name, description, status, created_at, updated_at, deleted_at
		FROM categories` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", err)
	}
	return out, total, nil
}

func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories SET name = $3, description = $4, status = $5, updated_at = $6
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		category.CompanyID, category.ID, category.Name, category.Description, category.Status, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}
