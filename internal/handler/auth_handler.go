package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/internal/auth"
)

// AuthHandler answers the gateway's ForwardAuth check.
type AuthHandler struct {
	verifier      auth.TokenVerifier
	sessionSecret string
}

func NewAuthHandler(verifier auth.TokenVerifier, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		verifier:      verifier,
		sessionSecret: sessionSecret,
	}
}

// Verify handles GET /auth/verify. On success the response carries the
// X-User-* headers the gateway forwards to the upstream service.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	tokenString := parts[1]

	if h.verifier != nil {
		claims, err := h.verifier.Validate(tokenString)
		if err == nil {
			c.Set("X-User-Id", claims.UserID)
			c.Set("X-User-Email", claims.Email)
			c.Set("X-User-Name", claims.Name)
			return c.SendStatus(fiber.StatusOK)
		}
		if h.sessionSecret == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
	}

	if h.sessionSecret != "" {
		claims, err := auth.ParseSessionToken(tokenString, h.sessionSecret)
		if err == nil {
			c.Set("X-User-Id", claims.UserID)
			c.Set("X-User-Email", claims.Email)
			return c.SendStatus(fiber.StatusOK)
		}
	}

	return c.SendStatus(fiber.StatusUnauthorized)
}
