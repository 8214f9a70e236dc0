package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	CategoryID   string   `json:"category_id" validate:"required"`
	UnitID       string   `json:"unit_id" validate:"required"`
	SupplierID   string   `json:"supplier_id"`
	ProductCode  string   `json:"product_code"`
	Name         string   `json:"name" validate:"required,min=2"`
	Description  string   `json:"description"`
	CostPrice    string   `json:"cost_price" validate:"omitempty"`
	SalePrice    string   `json:"sale_price" validate:"omitempty"`
	Availability []string `json:"availability" validate:"omitempty,dive,oneof=sale rental internal"`
}

// UpdateProductRequest body para PUT /api/products/:id (parcial).
type UpdateProductRequest struct {
	CategoryID   *string  `json:"category_id"`
	UnitID       *string  `json:"unit_id"`
	SupplierID   *string  `json:"supplier_id"`
	ProductCode  *string  `json:"product_code"`
	Name         *string  `json:"name" validate:"omitempty,min=2"`
	Description  *string  `json:"description"`
	CostPrice    *string  `json:"cost_price"`
	SalePrice    *string  `json:"sale_price"`
	Availability []string `json:"availability" validate:"omitempty,dive,oneof=sale rental internal"`
	Status       *bool    `json:"status"`
}

// ProductResponse producto con relaciones opcionales.
type ProductResponse struct {
	ID           string            `json:"id"`
	CompanyID    string            `json:"company_id"`
	CategoryID   string            `json:"category_id"`
	UnitID       string            `json:"unit_id"`
	SupplierID   string            `json:"supplier_id,omitempty"`
	ProductCode  string            `json:"product_code,omitempty"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	CostPrice    string            `json:"cost_price"`
	SalePrice    string            `json:"sale_price"`
	Availability []string          `json:"availability,omitempty"`
	Status       bool              `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty"`
	Category     *CategoryResponse `json:"category,omitempty"`
	Unit         *UnitResponse     `json:"unit,omitempty"`
}
