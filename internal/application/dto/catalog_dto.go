package dto

import "time"

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest body para PUT /api/categories/:id (parcial).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Status      *bool   `json:"status"`
}

// CategoryResponse categoría de producto.
type CategoryResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CreateUnitRequest body para POST /api/units.
type CreateUnitRequest struct {
	Symbol      string `json:"symbol" validate:"required,max=10"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// UpdateUnitRequest body para PUT /api/units/:id (parcial).
type UpdateUnitRequest struct {
	Symbol      *string `json:"symbol" validate:"omitempty,max=10"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Status      *bool   `json:"status"`
}

// UnitResponse unidad de medida.
type UnitResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Symbol      string     `json:"symbol"`
	Description string     `json:"description,omitempty"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CreateWarehouseRequest body para POST /api/warehouse.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Note string `json:"note" validate:"omitempty,max=500"`
}

// UpdateWarehouseRequest body para PUT /api/warehouse/:id (parcial).
type UpdateWarehouseRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
	Status *bool   `json:"status"`
}

// WarehouseResponse bodega.
type WarehouseResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Note      string     `json:"note,omitempty"`
	Status    bool       `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CreatePartnerRequest body para POST /api/partners.
type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	TaxID       string `json:"tax_id" validate:"omitempty,max=50"`
	PartnerType string `json:"partner_type" validate:"required,oneof=customer supplier both"`
	Note        string `json:"note" validate:"omitempty,max=500"`
}

// UpdatePartnerRequest body para PUT /api/partners/:id (parcial).
type UpdatePartnerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	TaxID       *string `json:"tax_id" validate:"omitempty,max=50"`
	PartnerType *string `json:"partner_type" validate:"omitempty,oneof=customer supplier both"`
	Note        *string `json:"note" validate:"omitempty,max=500"`
	Status      *bool   `json:"status"`
}

// PartnerResponse tercero (cliente/proveedor).
type PartnerResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	TaxID       string     `json:"tax_id,omitempty"`
	PartnerType string     `json:"partner_type"`
	Note        string     `json:"note,omitempty"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// CreateMovementTypeRequest body para POST /api/movement-types.
type CreateMovementTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Direction   string `json:"type" validate:"required,oneof=in out"`
}

// UpdateMovementTypeRequest body para PUT /api/movement-types/:id (parcial).
// La dirección no es actualizable: enviarla con otro valor es un error.
type UpdateMovementTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Direction   *string `json:"type" validate:"omitempty,oneof=in out"`
	Status      *bool   `json:"status"`
}

// MovementTypeResponse tipo de movimiento.
type MovementTypeResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Direction   string     `json:"type"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
