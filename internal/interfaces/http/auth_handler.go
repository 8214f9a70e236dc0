package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea empresa + usuario admin y devuelve el token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return respondFail(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return respondError(c, err)
	}
	return respondCreated(c, out, "usuario registrado")
}

// Login valida credenciales y devuelve el token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return respondFail(c, fiber.StatusUnauthorized, "credenciales inválidas")
		}
		return respondError(c, err)
	}
	return respondOK(c, out, "sesión iniciada")
}

// Me devuelve el perfil del usuario autenticado.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return respondFail(c, fiber.StatusUnauthorized, "token inválido")
	}
	out, err := h.uc.Me(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out, "")
}

// Logout confirma el cierre de sesión. Los JWT son stateless: el cliente
// descarta el token y este expira por su cuenta.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return respondOK(c, nil, "sesión cerrada")
}
