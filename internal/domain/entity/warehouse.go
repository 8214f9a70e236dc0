package entity

import "time"

// Warehouse representa una bodega o almacén de la empresa.
type Warehouse struct {
	ID        string
	CompanyID string
	Name      string
	Note      string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
