package entity

import "time"

// Tipos de partner.
const (
	PartnerTypeCustomer = "customer"
	PartnerTypeSupplier = "supplier"
	PartnerTypeBoth     = "both"
)

// Partner representa un tercero de la empresa: cliente, proveedor o ambos.
type Partner struct {
	ID          string
	CompanyID   string
	Name        string
	TaxID       string
	PartnerType string
	Note        string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
