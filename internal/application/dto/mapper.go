package dto

import "github.com/jhoicas/stock-ledger-api/internal/domain/entity"

// Mapeos entidad -> DTO compartidos entre casos de uso.

// ToUserResponse convierte un usuario de dominio.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToCategoryResponse convierte una categoría de dominio.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

// ToUnitResponse convierte una unidad de dominio.
func ToUnitResponse(u *entity.Unit) *UnitResponse {
	if u == nil {
		return nil
	}
	return &UnitResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Symbol:      u.Symbol,
		Description: u.Description,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		DeletedAt:   u.DeletedAt,
	}
}

// ToWarehouseResponse convierte una bodega de dominio.
func ToWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Note:      w.Note,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		DeletedAt: w.DeletedAt,
	}
}

// ToPartnerResponse convierte un partner de dominio.
func ToPartnerResponse(p *entity.Partner) *PartnerResponse {
	if p == nil {
		return nil
	}
	return &PartnerResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		TaxID:       p.TaxID,
		PartnerType: p.PartnerType,
		Note:        p.Note,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}

// ToMovementTypeResponse convierte un tipo de movimiento de dominio.
func ToMovementTypeResponse(mt *entity.MovementType) *MovementTypeResponse {
	if mt == nil {
		return nil
	}
	return &MovementTypeResponse{
		ID:          mt.ID,
		CompanyID:   mt.CompanyID,
		Name:        mt.Name,
		Description: mt.Description,
		Direction:   mt.Direction,
		Status:      mt.Status,
		CreatedAt:   mt.CreatedAt,
		UpdatedAt:   mt.UpdatedAt,
		DeletedAt:   mt.DeletedAt,
	}
}

// ToProductResponse convierte un producto de dominio con sus relaciones.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		CategoryID:   p.CategoryID,
		UnitID:       p.UnitID,
		SupplierID:   p.SupplierID,
		ProductCode:  p.ProductCode,
		Name:         p.Name,
		Description:  p.Description,
		CostPrice:    p.CostPrice.StringFixed(2),
		SalePrice:    p.SalePrice.StringFixed(2),
		Availability: p.Availability,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		DeletedAt:    p.DeletedAt,
		Category:     ToCategoryResponse(p.Category),
		Unit:         ToUnitResponse(p.Unit),
	}
}

// ToMovementResponse convierte una entrada del libro con sus relaciones.
func ToMovementResponse(m *entity.InventoryMovement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:               m.ID,
		CompanyID:        m.CompanyID,
		ProductID:        m.ProductID,
		WarehouseID:      m.WarehouseID,
		MovementTypeID:   m.MovementTypeID,
		QuantityMovement: FormatQuantity(m.QuantityMovement),
		QuantityTotal:    FormatQuantity(m.QuantityTotal),
		RentalID:         m.RentalID,
		SaleID:           m.SaleID,
		Notes:            m.Notes,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        m.DeletedAt,
		Product:          ToProductResponse(m.Product),
		Warehouse:        ToWarehouseResponse(m.Warehouse),
		MovementType:     ToMovementTypeResponse(m.MovementType),
	}
}

// ToStockSummaryResponse convierte un grupo de stock a su DTO, con cantidades
// formateadas a 2 decimales.
func ToStockSummaryResponse(s *entity.StockSummary) *StockSummaryResponse {
	if s == nil {
		return nil
	}
	out := &StockSummaryResponse{
		ID:           s.MovementID,
		Quantity:     FormatQuantity(s.Quantity),
		CreatedAt:    s.FirstCreated,
		UpdatedAt:    s.FirstUpdated,
		MovementType: ToMovementTypeResponse(s.MovementType),
	}
	out.Product = &StockProductRef{
		ID:          s.Product.ID,
		Name:        s.Product.Name,
		Description: s.Product.Description,
	}
	if s.Product.Category != nil {
		out.Product.Category = &CategoryRef{ID: s.Product.Category.ID, Name: s.Product.Category.Name}
	}
	if s.Product.Unit != nil {
		out.Product.Unit = &UnitRef{
			ID:          s.Product.Unit.ID,
			Symbol:      s.Product.Unit.Symbol,
			Description: s.Product.Unit.Description,
		}
	}
	for _, ws := range s.PerWarehouse {
		out.QuantityPerWarehouses = append(out.QuantityPerWarehouses, WarehouseStockResponse{
			Warehouse: WarehouseRef{ID: ws.Warehouse.ID, Name: ws.Warehouse.Name, Note: ws.Warehouse.Note},
			Quantity:  FormatQuantity(ws.Quantity),
		})
	}
	return out
}
