package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
)

// InventoryHandler maneja el libro de movimientos y las vistas de stock (protegido).
type InventoryHandler struct {
	register  *inventory.RegisterMovementUseCase
	movements *inventory.MovementQueryUseCase
	stock     *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	movements *inventory.MovementQueryUseCase,
	stock *inventory.StockQueryUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, movements: movements, stock: stock}
}

// RegisterMovement registra una entrada en el libro y devuelve la entrada con
// su saldo resultante. Saldo insuficiente responde 409.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID, userID := GetCompanyID(c), GetUserID(c)
	if companyID == "" || userID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.RegisterMovementRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.register.Register(c.Context(), companyID, userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "movimiento registrado")
}

// ListMovements lista entradas crudas del libro con filtros y paginación.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "query inválido")
	}
	list, pagination, err := h.movements.List(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination, "")
}

// GetMovement devuelve una entrada por ID, incluyendo soft-deleted.
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	out, err := h.movements.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// UpdateMovement edita los metadatos de una entrada. Los saldos no se recalculan.
func (h *InventoryHandler) UpdateMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.UpdateMovementRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.movements.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "movimiento actualizado")
}

// DeleteMovement soft-elimina una entrada del libro.
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	if err := h.movements.SoftDelete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "movimiento eliminado")
}

// RestoreMovement revierte el soft delete de una entrada.
func (h *InventoryHandler) RestoreMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	out, err := h.movements.Restore(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "movimiento restaurado")
}

// GetCurrentStock devuelve el saldo vigente de (producto, bodega).
func (h *InventoryHandler) GetCurrentStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	out, err := h.movements.GetStock(c.Context(), companyID, c.Query("product_id"), c.Query("warehouse_id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// ListByProduct lista los movimientos de un producto.
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	list, err := h.movements.ListByProduct(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list, "")
}

// ListByWarehouse lista los movimientos de una bodega.
func (h *InventoryHandler) ListByWarehouse(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	list, err := h.movements.ListByWarehouse(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, list, "")
}

// ListStock devuelve el stock actual agrupado por producto y bodega, paginado
// sobre los grupos.
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.StockRequest
	if err := c.QueryParser(&in); err != nil {
		return respondFail(c, fiber.StatusBadRequest, "query inválido")
	}
	list, pagination, err := h.stock.ListStock(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination, "")
}

// StockReport genera el PDF del stock actual completo.
func (h *InventoryHandler) StockReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	pdfBytes, err := h.stock.Report(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	filename := "stock-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
