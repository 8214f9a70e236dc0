package entity

import "time"

// Unit representa una unidad de medida de producto (kg, un, m, etc.).
type Unit struct {
	ID          string
	CompanyID   string
	Symbol      string
	Description string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
