package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MovementTypeHandler maneja las peticiones HTTP de tipos de movimiento (protegido).
type MovementTypeHandler struct {
	uc *usecase.MovementTypeUseCase
}

func NewMovementTypeHandler(uc *usecase.MovementTypeUseCase) *MovementTypeHandler {
	return &MovementTypeHandler{uc: uc}
}

func (h *MovementTypeHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.CreateMovementTypeRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "tipo de movimiento creado")
}

func (h *MovementTypeHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	filter := repository.MovementTypeFilter{
		Search:    c.Query("search"),
		Direction: c.Query("type"),
	}
	if s := c.Query("status"); s != "" {
		status := s == "true" || s == "1"
		filter.Status = &status
	}
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	list, pagination, err := h.uc.List(c.Context(), companyID, filter, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination, "")
}

func (h *MovementTypeHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	out, err := h.uc.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// Update edita un tipo de movimiento. Intentar cambiar la dirección responde 422.
func (h *MovementTypeHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.UpdateMovementTypeRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "tipo de movimiento actualizado")
}

func (h *MovementTypeHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "tipo de movimiento eliminado")
}
