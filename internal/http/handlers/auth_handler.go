package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lojabase/internal/domain"
	"lojabase/internal/log"
	"lojabase/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /clientes
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in domain.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, msgBadBody)
	}
	cust, err := h.Auth.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, "auth.register", err, messages{
			invalid: "Preencha todos os campos.",
			fault:   "Erro ao cadastrar cliente.",
		})
	}
	log.Audit(c, "auth.register", map[string]any{"customer_id": cust.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"mensagem": "Cliente cadastrado com sucesso."})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in domain.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, msgBadBody)
	}
	tok, err := h.Auth.Login(c.UserContext(), in)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		log.Security(c, "auth.login.fail", map[string]any{"email": in.Email})
		return errJSON(c, fiber.StatusUnauthorized, msgBadCredentials)
	}
	if err != nil {
		return fail(c, "auth.login", err, messages{
			invalid: "Informe o email e senha.",
			fault:   "Erro ao realizar login.",
		})
	}
	log.Audit(c, "auth.login.success", map[string]any{"email": in.Email})
	return c.JSON(fiber.Map{"mensagem": "Login bem-sucedido!", "token": tok})
}
