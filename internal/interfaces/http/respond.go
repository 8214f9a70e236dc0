package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// Envelope formato de toda respuesta JSON de la API.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Errors     any             `json:"errors,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

var validate = validator.New()

// respondOK responde 200 con data.
func respondOK(c *fiber.Ctx, data any, message string) error {
	return c.JSON(Envelope{Success: true, Data: data, Message: message})
}

// respondCreated responde 201 con data.
func respondCreated(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data, Message: message})
}

// respondPage responde 200 con data paginada.
func respondPage(c *fiber.Ctx, data any, pagination dto.Pagination, message string) error {
	return c.JSON(Envelope{Success: true, Data: data, Message: message, Pagination: &pagination})
}

// respondError mapea un error de dominio a su código HTTP y responde el envelope.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrImmutableField):
		return respondFail(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return respondFail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrConflict):
		return respondFail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondFail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNoCompany), errors.Is(err, domain.ErrNotDeleted):
		return respondFail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return respondFail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return respondFail(c, fiber.StatusUnauthorized, err.Error())
	default:
		return respondFail(c, fiber.StatusInternalServerError, "error interno")
	}
}

// respondFail responde un error simple con el status dado.
func respondFail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: message})
}

// parseAndValidate parsea el body y corre las reglas de validación del DTO.
// Devuelve false si ya respondió un error.
func parseAndValidate(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = respondFail(c, fiber.StatusBadRequest, "cuerpo inválido")
		return false
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			_ = c.Status(fiber.StatusUnprocessableEntity).JSON(Envelope{
				Success: false, Errors: fields, Message: "datos inválidos",
			})
			return false
		}
		_ = respondFail(c, fiber.StatusUnprocessableEntity, "datos inválidos")
		return false
	}
	return true
}
