package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MovementQueryUseCase operaciones de consulta y mantenimiento sobre el libro
// de movimientos: listados, detalle, edición parcial, soft delete y restore.
type MovementQueryUseCase struct {
	movRepo       repository.InventoryMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(
	movRepo repository.InventoryMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// List lista entradas crudas del libro (no eliminadas) con filtros y paginación.
func (uc *MovementQueryUseCase) List(ctx context.Context, companyID string, in dto.ListMovementsRequest) ([]*dto.MovementResponse, dto.Pagination, error) {
	if companyID == "" {
		return nil, dto.Pagination{}, domain.ErrNoCompany
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 20
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}
	filter := repository.MovementFilter{
		Search:    in.Search,
		ProductID: in.ProductID,
		Start:     in.StartDate,
		End:       in.EndDate,
	}
	list, total, err := uc.movRepo.List(ctx, companyID, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

// GetByID devuelve una entrada con relaciones, incluyendo soft-deleted.
func (uc *MovementQueryUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	movement, err := uc.movRepo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMovementResponse(movement), nil
}

// Update edita los campos mutables de una entrada. Nunca recalcula
// quantity_total: ni el de esta entrada ni el de las posteriores (decisión de
// producto registrada; ver DESIGN.md).
func (uc *MovementQueryUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	movement, err := uc.movRepo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != nil {
		product, err := uc.productRepo.GetByID(ctx, companyID, *in.ProductID, false)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		movement.ProductID = *in.ProductID
		movement.Product = product
	}
	if in.WarehouseID != nil {
		warehouse, err := uc.warehouseRepo.GetByID(ctx, companyID, *in.WarehouseID, false)
		if err != nil {
			return nil, err
		}
		if warehouse == nil {
			return nil, domain.ErrNotFound
		}
		movement.WarehouseID = *in.WarehouseID
		movement.Warehouse = warehouse
	}
	if in.Notes != nil {
		movement.Notes = *in.Notes
	}
	if in.RentalID != nil {
		movement.RentalID = *in.RentalID
	}
	if in.SaleID != nil {
		movement.SaleID = *in.SaleID
	}
	if in.Status != nil {
		movement.Status = *in.Status
	}
	movement.UpdatedAt = time.Now()
	if err := uc.movRepo.Update(ctx, movement); err != nil {
		return nil, err
	}
	return dto.ToMovementResponse(movement), nil
}

// SoftDelete marca una entrada como eliminada. Las entradas posteriores
// conservan su quantity_total.
func (uc *MovementQueryUseCase) SoftDelete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return domain.ErrNoCompany
	}
	movement, err := uc.movRepo.GetByID(ctx, companyID, id, false)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.SoftDelete(ctx, companyID, id)
}

// Restore revierte un soft delete. Si la entrada no está eliminada devuelve
// ErrNotDeleted.
func (uc *MovementQueryUseCase) Restore(ctx context.Context, companyID, id string) (*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	movement, err := uc.movRepo.GetByID(ctx, companyID, id, true)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if !movement.Deleted() {
		return nil, domain.ErrNotDeleted
	}
	if err := uc.movRepo.Restore(ctx, companyID, id); err != nil {
		return nil, err
	}
	movement.DeletedAt = nil
	return dto.ToMovementResponse(movement), nil
}

// GetStock devuelve el saldo vigente de (producto, bodega): el quantity_total
// de la entrada activa más reciente, o 0 si el libro está vacío para la tupla.
func (uc *MovementQueryUseCase) GetStock(ctx context.Context, companyID, productID, warehouseID string) (*dto.CurrentStockResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	last, err := uc.movRepo.FindLatest(ctx, companyID, productID, warehouseID)
	if err != nil {
		return nil, err
	}
	out := &dto.CurrentStockResponse{
		ProductID:    productID,
		WarehouseID:  warehouseID,
		CurrentStock: "0.00",
	}
	if last != nil {
		out.CurrentStock = dto.FormatQuantity(last.QuantityTotal)
		out.LastMovement = dto.ToMovementResponse(last)
	}
	return out, nil
}

// ListByProduct lista los movimientos activos de un producto, más recientes primero.
func (uc *MovementQueryUseCase) ListByProduct(ctx context.Context, companyID, productID string) ([]*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	list, err := uc.movRepo.ListByProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out, nil
}

// ListByWarehouse lista los movimientos activos de una bodega, más recientes primero.
func (uc *MovementQueryUseCase) ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	list, err := uc.movRepo.ListByWarehouse(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out, nil
}
