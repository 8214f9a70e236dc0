package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional: resuelve la dirección en el registro de tipos, lee el último
// saldo de la tupla (empresa, producto, bodega) bajo lock y persiste la nueva
// entrada con el saldo corriente resultante.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Register valida la petición y ejecuta el alta dentro de una transacción.
//
// Reglas:
//   - quantity_movement debe ser estrictamente positiva (la dirección viene
//     del tipo de movimiento, no del signo).
//   - producto, bodega y tipo deben existir, no estar eliminados y pertenecer
//     a la empresa del caller.
//   - un movimiento "out" que dejaría el saldo negativo se rechaza sin
//     escribir ninguna fila.
//
// En éxito aparece exactamente una fila nueva en el libro; en cualquier
// rechazo, cero.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if companyID == "" {
		return nil, domain.ErrNoCompany
	}
	if in.ProductID == "" || in.WarehouseID == "" || in.MovementType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.QuantityMovement.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.InventoryMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		typeRepo repository.MovementTypeRepository,
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
	) error {
		// Validar referencias dentro de la tx: deben seguir existiendo al
		// momento del commit.
		product, err := productRepo.GetByID(ctx, companyID, in.ProductID, false)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		warehouse, err := warehouseRepo.GetByID(ctx, companyID, in.WarehouseID, false)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		movementType, err := typeRepo.GetByID(ctx, companyID, in.MovementType, false)
		if err != nil {
			return err
		}
		if movementType == nil || !entity.IsValidDirection(movementType.Direction) {
			return domain.ErrNotFound
		}

		// Serializa a los escritores de esta tupla; tuplas distintas siguen
		// escribiendo en paralelo.
		if err := movRepo.LockTuple(ctx, companyID, in.ProductID, in.WarehouseID); err != nil {
			return err
		}

		last, err := movRepo.FindLatest(ctx, companyID, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		prior := decimal.Zero
		if last != nil {
			prior = last.QuantityTotal
		}

		delta := in.QuantityMovement
		if movementType.Direction == entity.DirectionOut {
			delta = delta.Neg()
		}
		total := prior.Add(delta)
		if total.IsNegative() {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		movement := &entity.InventoryMovement{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			ProductID:        in.ProductID,
			WarehouseID:      in.WarehouseID,
			MovementTypeID:   in.MovementType,
			QuantityMovement: in.QuantityMovement,
			QuantityTotal:    total,
			RentalID:         in.RentalID,
			SaleID:           in.SaleID,
			Notes:            in.Notes,
			Status:           entity.MovementStatusActive,
			CreatedBy:        userID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := movRepo.Create(ctx, movement); err != nil {
			return err
		}
		movement.Product = product
		movement.Warehouse = warehouse
		movement.MovementType = movementType
		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToMovementResponse(created), nil
}
