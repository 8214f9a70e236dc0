package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// UnitUseCase CRUD de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func (uc *UnitUseCase) Create(ctx context.Context, companyID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	now := time.Now()
	u := &entity.Unit{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Symbol:      in.Symbol,
		Description: in.Description,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUnitResponse(u), nil
}

func (uc *UnitUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.UnitResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	u, err := uc.repo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToUnitResponse(u), nil
}

func (uc *UnitUseCase) List(ctx context.Context, companyID, search string, page, limit int) ([]*dto.UnitResponse, dto.Pagination, error) {
	if companyID == "" {
		return nil, dto.Pagination{}, domain.ErrNoCompany
	}
	if limit <= 0 {
		limit = 25
	}
	if page <= 0 {
		page = 1
	}
	list, total, err := uc.repo.List(ctx, companyID, search, limit, (page-1)*limit)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ToUnitResponse(u))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

func (uc *UnitUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	u, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if in.Symbol != nil {
		u.Symbol = *in.Symbol
	}
	if in.Description != nil {
		u.Description = *in.Description
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUnitResponse(u), nil
}

func (uc *UnitUseCase) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	u, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, companyID, id)
}
