package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Disponibilidad de un producto.
const (
	AvailabilitySale     = "sale"
	AvailabilityRental   = "rental"
	AvailabilityInternal = "internal"
)

// Product representa un producto del inventario. El stock nunca vive aquí:
// se deriva del libro de movimientos por bodega.
type Product struct {
	ID           string
	CompanyID    string
	CategoryID   string
	UnitID       string
	SupplierID   string // partner proveedor, opcional
	ProductCode  string
	Name         string
	Description  string
	CostPrice    decimal.Decimal
	SalePrice    decimal.Decimal
	Availability []string // sale, rental, internal
	Status       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Relaciones cargadas bajo demanda por los repositorios (pueden ser nil).
	Category *Category
	Unit     *Unit
}
