package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"lojabase/internal/domain"
	applog "lojabase/internal/log"
)

type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// RequireToken guards protected routes. A missing bearer token is answered
// with 401 and an invalid or expired one with 403; in both cases the next
// handler is not called. On success the claims are stored in Locals.
func RequireToken(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tok == "" {
			applog.Security(c, "access.denied.no_token", nil)
			return errJSON(c, fiber.StatusUnauthorized, msgNoToken)
		}
		claims, err := tokens.Verify(tok)
		if err != nil {
			applog.Security(c, "access.denied.bad_token", map[string]any{"reason": err.Error()})
			return errJSON(c, fiber.StatusForbidden, msgBadToken)
		}
		c.Locals(applog.ClaimsKey, claims)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
