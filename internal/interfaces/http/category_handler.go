package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías (protegido).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.CreateCategoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "categoría creada")
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	list, pagination, err := h.uc.List(c.Context(), companyID, c.Query("search"), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination, "")
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
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

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.UpdateCategoryRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "categoría actualizada")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "categoría eliminada")
}
