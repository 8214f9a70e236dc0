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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.TaxID, company.Phone,
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, phone, status, created_at, updated_at, deleted_at
		FROM companies WHERE id = $1 AND deleted_at IS NULL`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
