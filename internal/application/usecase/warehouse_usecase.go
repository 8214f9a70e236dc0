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

// WarehouseUseCase CRUD de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Note:      in.Note,
		Status:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	w, err := uc.repo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) List(ctx context.Context, companyID, search string, page, limit int) ([]*dto.WarehouseResponse, dto.Pagination, error) {
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
	out := make([]*dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, dto.ToWarehouseResponse(w))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	w, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Note != nil {
		w.Note = *in.Note
	}
	if in.Status != nil {
		w.Status = *in.Status
	}
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return dto.ToWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	w, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, companyID, id)
}
