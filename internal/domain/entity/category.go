package entity

import "time"

// Category representa una categoría de productos de la empresa.
type Category struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	Status      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
