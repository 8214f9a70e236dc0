package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un movimiento.
const (
	MovementStatusActive   = "active"
	MovementStatusInactive = "inactive"
	MovementStatusPending  = "pending"
)

// InventoryMovement es una entrada del libro de movimientos de inventario.
//
// QuantityMovement es la magnitud del evento (siempre positiva; la dirección
// viene del tipo de movimiento, no del signo). QuantityTotal es el saldo
// corriente de (producto, bodega) después de aplicar este movimiento: la
// entrada más reciente no eliminada es el saldo autoritativo.
//
// Seq es el orden de inserción (BIGSERIAL): desempata entradas creadas en el
// mismo instante. Las entradas son inmutables una vez creadas, salvo campos
// de metadatos; QuantityTotal nunca se recalcula retroactivamente.
type InventoryMovement struct {
	ID               string
	Seq              int64
	CompanyID        string
	ProductID        string
	WarehouseID      string
	MovementTypeID   string
	QuantityMovement decimal.Decimal
	QuantityTotal    decimal.Decimal
	RentalID         string // vínculo opcional al alquiler origen
	SaleID           string // vínculo opcional a la venta origen
	Notes            string
	Status           string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time

	// Relaciones cargadas bajo demanda (pueden ser nil).
	Product      *Product
	Warehouse    *Warehouse
	MovementType *MovementType
}

// Deleted indica si el movimiento está eliminado (soft delete).
func (m *InventoryMovement) Deleted() bool {
	return m.DeletedAt != nil
}
