package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, unitRepo repository.UnitRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, unitRepo: unitRepo}
}

// parsePrice interpreta un precio decimal en texto; vacío es cero.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("precio negativo")
	}
	return d, nil
}

func (uc *ProductUseCase) validateRefs(ctx context.Context, companyID, categoryID, unitID string) error {
	if categoryID != "" {
		cat, err := uc.categoryRepo.GetByID(ctx, companyID, categoryID, false)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrInvalidInput
		}
	}
	if unitID != "" {
		unit, err := uc.unitRepo.GetByID(ctx, companyID, unitID, false)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// Create crea un producto validando que categoría y unidad existan en la empresa.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	if err := uc.validateRefs(ctx, companyID, in.CategoryID, in.UnitID); err != nil {
		return nil, err
	}
	costPrice, err := parsePrice(in.CostPrice)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	salePrice, err := parsePrice(in.SalePrice)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Description:  in.Description,
		ProductCode:  in.ProductCode,
		CategoryID:   in.CategoryID,
		UnitID:       in.UnitID,
		SupplierID:   in.SupplierID,
		CostPrice:    costPrice,
		SalePrice:    salePrice,
		Availability: in.Availability,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// GetByID obtiene un producto con sus relaciones (incluye soft-deleted).
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
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
	return dto.ToProductResponse(p), nil
}

// List lista productos con búsqueda insensible a tildes, filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, filter repository.ProductFilter, page, limit int) ([]*dto.ProductResponse, dto.Pagination, error) {
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
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// Update edita los campos presentes en la petición.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
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
	var newCategory, newUnit string
	if in.CategoryID != nil {
		newCategory = *in.CategoryID
	}
	if in.UnitID != nil {
		newUnit = *in.UnitID
	}
	if err := uc.validateRefs(ctx, companyID, newCategory, newUnit); err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ProductCode != nil {
		p.ProductCode = *in.ProductCode
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		p.UnitID = *in.UnitID
	}
	if in.SupplierID != nil {
		p.SupplierID = *in.SupplierID
	}
	if in.CostPrice != nil {
		cost, err := parsePrice(*in.CostPrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.CostPrice = cost
	}
	if in.SalePrice != nil {
		sale, err := parsePrice(*in.SalePrice)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.SalePrice = sale
	}
	if in.Availability != nil {
		p.Availability = in.Availability
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(updated), nil
}

// Delete soft-elimina un producto. Los movimientos históricos se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
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
