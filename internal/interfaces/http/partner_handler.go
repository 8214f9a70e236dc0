package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// PartnerHandler maneja las peticiones HTTP de terceros (protegido).
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.CreatePartnerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out, "tercero creado")
}

func (h *PartnerHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	filter := repository.PartnerFilter{
		Search:      c.Query("search"),
		PartnerType: c.Query("partner_type"),
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

func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
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

func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	var in dto.UpdatePartnerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "tercero actualizado")
}

func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, nil, "tercero eliminado")
}
