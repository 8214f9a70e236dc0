package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseStock es el desglose de stock de un producto en una bodega:
// suma de QuantityMovement de las entradas no eliminadas. Es un agregado de
// presentación, distinto del snapshot QuantityTotal del libro.
type WarehouseStock struct {
	Warehouse Warehouse
	Quantity  decimal.Decimal
}

// StockSummary agrupa el stock actual de un producto en todas sus bodegas.
type StockSummary struct {
	MovementID   string // id de la primera entrada del grupo
	Product      Product
	MovementType *MovementType
	Quantity     decimal.Decimal // total del producto: suma de bodegas
	PerWarehouse []WarehouseStock
	FirstCreated time.Time
	FirstUpdated time.Time
}
