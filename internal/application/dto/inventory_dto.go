package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// La dirección del movimiento la decide el tipo, no el signo de la cantidad:
// quantity_movement es siempre la magnitud positiva del evento.
type RegisterMovementRequest struct {
	ProductID        string          `json:"product_id" validate:"required"`
	WarehouseID      string          `json:"warehouse_id" validate:"required"`
	MovementType     string          `json:"movement_type" validate:"required"`
	QuantityMovement decimal.Decimal `json:"quantity_movement"`
	Notes            string          `json:"notes" validate:"omitempty,max=500"`
	RentalID         string          `json:"rental_id" validate:"omitempty"`
	SaleID           string          `json:"sale_id" validate:"omitempty"`
}

// UpdateMovementRequest body para PUT /api/inventory/movements/:id.
// Solo campos mutables. quantity_total nunca se recalcula aquí ni en las
// entradas posteriores.
type UpdateMovementRequest struct {
	ProductID   *string `json:"product_id"`
	WarehouseID *string `json:"warehouse_id"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
	RentalID    *string `json:"rental_id"`
	SaleID      *string `json:"sale_id"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

// ListMovementsRequest query para GET /api/inventory/movements.
type ListMovementsRequest struct {
	Limit     int        `query:"limit"`
	Page      int        `query:"page"`
	Search    string     `query:"search"`
	ProductID string     `query:"product_id"`
	StartDate *time.Time `query:"start_date"`
	EndDate   *time.Time `query:"end_date"`
}

// MovementResponse entrada del libro con relaciones.
type MovementResponse struct {
	ID               string                `json:"id"`
	CompanyID        string                `json:"company_id"`
	ProductID        string                `json:"product_id"`
	WarehouseID      string                `json:"warehouse_id"`
	MovementTypeID   string                `json:"movement_type"`
	QuantityMovement string                `json:"quantity_movement"`
	QuantityTotal    string                `json:"quantity_total"`
	RentalID         string                `json:"rental_id,omitempty"`
	SaleID           string                `json:"sale_id,omitempty"`
	Notes            string                `json:"notes,omitempty"`
	Status           string                `json:"status"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	DeletedAt        *time.Time            `json:"deleted_at,omitempty"`
	Product          *ProductResponse      `json:"product,omitempty"`
	Warehouse        *WarehouseResponse    `json:"warehouse,omitempty"`
	MovementType     *MovementTypeResponse `json:"movement_type_detail,omitempty"`
}

// StockRequest query para GET /api/inventory.
type StockRequest struct {
	Limit         int              `query:"limit"`
	Page          int              `query:"page"`
	Search        string           `query:"search"`
	ProductID     string           `query:"product_id"`
	QuantityBelow *decimal.Decimal `query:"quantity_below"`
}

// WarehouseStockResponse desglose por bodega dentro de un producto.
type WarehouseStockResponse struct {
	Warehouse WarehouseRef `json:"warehouse"`
	Quantity  string       `json:"quantity"` // 2 decimales
}

// WarehouseRef referencia mínima de bodega en el desglose de stock.
type WarehouseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// StockSummaryResponse stock actual de un producto agrupado por bodega.
type StockSummaryResponse struct {
	ID                    string                   `json:"id"`
	Quantity              string                   `json:"quantity"` // 2 decimales
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
	Product               *StockProductRef         `json:"product"`
	MovementType          *MovementTypeResponse    `json:"movement_type,omitempty"`
	QuantityPerWarehouses []WarehouseStockResponse `json:"quantity_per_warehouses"`
}

// StockProductRef producto con categoría y unidad para la vista de stock.
type StockProductRef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    *CategoryRef `json:"category,omitempty"`
	Unit        *UnitRef     `json:"unit,omitempty"`
}

// CategoryRef referencia mínima de categoría.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnitRef referencia mínima de unidad.
type UnitRef struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
}

// CurrentStockResponse respuesta de GET /api/inventory/movements/stock.
type CurrentStockResponse struct {
	ProductID    string            `json:"product_id"`
	WarehouseID  string            `json:"warehouse_id"`
	CurrentStock string            `json:"current_stock"`
	LastMovement *MovementResponse `json:"last_movement"`
}

// FormatQuantity formatea una cantidad con 2 decimales para presentación.
func FormatQuantity(d decimal.Decimal) string {
	return d.StringFixed(2)
}
