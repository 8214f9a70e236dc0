package entity

import "time"

// Direcciones de un tipo de movimiento. La dirección decide el signo del
// delta sobre el saldo: "in" suma, "out" resta.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// MovementType define un tipo de movimiento de inventario de la empresa
// (compra, venta, devolución, etc.) con su dirección asociada.
//
// La dirección es inmutable después de creado: cambiarla corrompería la
// semántica de los saldos históricos que la referencian.
type MovementType struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Direction   string // in | out
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsValidDirection indica si s es una dirección conocida.
func IsValidDirection(s string) bool {
	return s == DirectionIn || s == DirectionOut
}
