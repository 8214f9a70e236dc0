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

// MovementTypeUseCase CRUD del registro de tipos de movimiento. La dirección
// (in/out) queda fijada en la creación: los saldos históricos dependen de ella.
type MovementTypeUseCase struct {
	repo repository.MovementTypeRepository
}

// NewMovementTypeUseCase construye el caso de uso.
func NewMovementTypeUseCase(repo repository.MovementTypeRepository) *MovementTypeUseCase {
	return &MovementTypeUseCase{repo: repo}
}

// Create crea un tipo de movimiento de la empresa.
func (uc *MovementTypeUseCase) Create(ctx context.Context, companyID string, in dto.CreateMovementTypeRequest) (*dto.MovementTypeResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	if !entity.IsValidDirection(in.Direction) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	mt := &entity.MovementType{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		Direction:   in.Direction,
		Status:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, mt); err != nil {
		return nil, err
	}
	return dto.ToMovementTypeResponse(mt), nil
}

// GetByID obtiene un tipo por ID (incluye soft-deleted, como el show original).
func (uc *MovementTypeUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.MovementTypeResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	mt, err := uc.repo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMovementTypeResponse(mt), nil
}

// List lista tipos de la empresa con búsqueda, filtro por dirección y estado.
func (uc *MovementTypeUseCase) List(ctx context.Context, companyID string, filter repository.MovementTypeFilter, page, limit int) ([]*dto.MovementTypeResponse, dto.Pagination, error) {
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
	out := make([]*dto.MovementTypeResponse, 0, len(list))
	for _, mt := range list {
		out = append(out, dto.ToMovementTypeResponse(mt))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// Update edita nombre, descripción y estado. Un intento de cambiar la
// dirección se rechaza con ErrImmutableField: cambiarla corrompería la
// semántica de los quantity_total históricos que la referencian.
func (uc *MovementTypeUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateMovementTypeRequest) (*dto.MovementTypeResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	mt, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Direction != nil && *in.Direction != mt.Direction {
		return nil, domain.ErrImmutableField
	}
	if in.Name != nil {
		mt.Name = *in.Name
	}
	if in.Description != nil {
		mt.Description = *in.Description
	}
	if in.Status != nil {
		mt.Status = *in.Status
	}
	mt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mt); err != nil {
		return nil, err
	}
	return dto.ToMovementTypeResponse(mt), nil
}

// Delete soft-elimina un tipo de movimiento.
func (uc *MovementTypeUseCase) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	mt, err := uc.repo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if mt == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, companyID, id)
}
