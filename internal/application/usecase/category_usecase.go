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

// CategoryUseCase CRUD de categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CategoryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	c, err := uc.repo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) List(ctx context.Context, companyID, search string, page, limit int) ([]*dto.CategoryResponse, dto.Pagination, error) {
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
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	c, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Status != nil {
		c.Status = *in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	c, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, companyID, id)
}
