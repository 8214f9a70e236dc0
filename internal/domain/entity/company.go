package entity

import "time"

// Company representa una organización/tenant del sistema. Todo recurso
// (productos, bodegas, movimientos) pertenece a exactamente una empresa.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Phone     string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
