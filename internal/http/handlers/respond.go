package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lojabase/internal/domain"
	applog "lojabase/internal/log"
)

const (
	msgNoToken         = "Acesso negado, Token não fornecido."
	msgBadToken        = "Token invalido ou expirado."
	msgDuplicateEmail  = "Email ja cadastrado."
	msgBadCredentials  = "Email ou senha inválidos."
	msgBadBody         = "Corpo da requisição inválido."
	msgInternal        = "Erro interno do servidor."
	msgProductNotFound = "Produto não encontrado."
	msgClientNotFound  = "Cliente não encontrado."
)

// messages holds the caller-facing text for one operation.
type messages struct {
	invalid  string
	notFound string
	fault    string
}

func errJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"erro": msg})
}

// fail maps a service error to its status code. Store faults are logged with
// their detail and answered with the generic m.fault text only.
func fail(c *fiber.Ctx, action string, err error, m messages) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		applog.Security(c, "validation.fail", map[string]any{"op": action})
		return errJSON(c, fiber.StatusBadRequest, m.invalid)
	case errors.Is(err, domain.ErrDuplicateEmail):
		applog.Security(c, action+".duplicate", nil)
		return errJSON(c, fiber.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, domain.ErrInvalidCredentials):
		applog.Security(c, action+".fail", nil)
		return errJSON(c, fiber.StatusUnauthorized, msgBadCredentials)
	case errors.Is(err, domain.ErrNotFound):
		return errJSON(c, fiber.StatusNotFound, m.notFound)
	default:
		applog.Error(c, action+".fail", err, nil)
		return errJSON(c, fiber.StatusInternalServerError, m.fault)
	}
}

// ErrorHandler is the fiber fallback for errors no handler mapped.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return errJSON(c, fe.Code, fe.Message)
	}
	applog.Error(c, "server.error", err, nil)
	return errJSON(c, fiber.StatusInternalServerError, msgInternal)
}
