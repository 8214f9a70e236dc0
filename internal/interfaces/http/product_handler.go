package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.CreateProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "producto creado")
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	filter := repository.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
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

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.UpdateProductRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "producto actualizado")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "producto eliminado")
}
