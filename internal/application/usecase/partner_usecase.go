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

// PartnerUseCase CRUD de terceros (clientes y proveedores).
type PartnerUseCase struct {
	repo repository.PartnerRepository
}

func NewPartnerUseCase(repo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{repo: repo}
}

func (uc *PartnerUseCase) Create(ctx context.Context, companyID string, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	now := time.Now()
	p := &entity.Partner{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		TaxID:       in.TaxID,
		PartnerType: in.PartnerType,
		Note:        in.Note,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPartnerResponse(p), nil
}

func (uc *PartnerUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.PartnerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	p, err := uc.repo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToPartnerResponse(p), nil
}

func (uc *PartnerUseCase) List(ctx context.Context, companyID string, filter repository.PartnerFilter, page, limit int) ([]*dto.PartnerResponse, dto.Pagination, error) {
	if companyID == "" {
		return nil, dto.Pagination{}, domain.ErrNoCompany
	}
	if limit <= 0 {
		limit = 25
	}
	if page <= 0 {
		page = 1
	}
	list, total, err := uc.repo.List(ctx, companyID, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.PartnerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPartnerResponse(p))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

func (uc *PartnerUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	p, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.TaxID != nil {
		p.TaxID = *in.TaxID
	}
	if in.PartnerType != nil {
		p.PartnerType = *in.PartnerType
	}
	if in.Note != nil {
		p.Note = *in.Note
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPartnerResponse(p), nil
}

func (uc *PartnerUseCase) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	p, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, companyID, id)
}
