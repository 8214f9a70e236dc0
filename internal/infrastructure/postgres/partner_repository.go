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

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación del puerto PartnerRepository sobre PostgreSQL.
type PartnerRepo struct {
	q Querier
}

func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

func (r *PartnerRepo) Create(ctx context.Context, partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, company_id, name, tax_id, partner_type, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		partner.ID, partner.CompanyID, partner.Name, partner.TaxID, partner.PartnerType,
		partner.Note, partner.Status, partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (r *PartnerRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.Partner, error) {
	query := `
		SELECT id, company_id, name, tax_id, partner_type, note, status, created_at, updated_at, deleted_at
		FROM partners WHERE company_id = $1 AND id = $2`
	if !withDeleted {
		query += ` AND deleted_at IS NULL`
	}
	var p entity.Partner
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.TaxID, &p.PartnerType, &p.Note,
		&p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return &p, nil
}

func (r *PartnerRepo) List(ctx context.Context, companyID string, filter repository.PartnerFilter, limit, offset int) ([]*entity.Partner, int, error) {
	where := ` WHERE company_id = $1 AND deleted_at IS NULL`
	args := []any{companyID}
	if filter.PartnerType != "" {
		args = append(args, filter.PartnerType)
		where += fmt.Sprintf(" AND (partner_type = $%d OR partner_type = 'both')", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR tax_id LIKE $%d OR %s LIKE $%d)",
			unaccent("name"), len(args), len(args), unaccent("note"), len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM partners`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count partners: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT id, company_id, name, tax_id, partner_type, note, status, created_at, updated_at, deleted_at
		FROM partners` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var out []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		err := rows.Scan(
			&p.ID, &p.CompanyID, &p.Name, &p.TaxID, &p.PartnerType, &p.Note,
			&p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate partners: %w", err)
	}
	return out, total, nil
}

func (r *PartnerRepo) Update(ctx context.Context, partner *entity.Partner) error {
	query := `
		UPDATE partners SET name = $3, tax_id = $4, partner_type = $5, note = $6, status = $7, updated_at = $8
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		partner.CompanyID, partner.ID, partner.Name, partner.TaxID, partner.PartnerType,
		partner.Note, partner.Status, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

func (r *PartnerRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE partners SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete partner: %w", err)
	}
	return nil
}
