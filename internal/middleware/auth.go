package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/internal/auth"
	"github.com/shopstack/studio-api/pkg/response"
)

// AuthMiddleware authenticates API requests from the Authorization header.
// Zitadel JWKS tokens are checked first; HMAC session tokens are accepted
// as a fallback when a secret is configured. Either side may be absent.
type AuthMiddleware struct {
	verifier      auth.TokenVerifier
	sessionSecret string
}

func NewAuthMiddleware(verifier auth.TokenVerifier, sessionSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:      verifier,
		sessionSecret: sessionSecret,
	}
}

// Authenticate validates the bearer token and stores the caller's identity
// in the request locals.
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "Missing or malformed authorization header")
		}

		if m.verifier != nil {
			claims, err := m.verifier.Validate(tokenString)
			if err == nil {
				c.Locals("userId", claims.UserID)
				c.Locals("email", claims.Email)
				c.Locals("name", claims.Name)
				c.Locals("claims", claims)
				return c.Next()
			}
			if m.sessionSecret == "" {
				return response.Unauthorized(c, "Invalid or expired token")
			}
		}

		if m.sessionSecret != "" {
			claims, err := auth.ParseSessionToken(tokenString, m.sessionSecret)
			if err != nil {
				return response.Unauthorized(c, "Invalid or expired token")
			}
			c.Locals("userId", claims.UserID)
			c.Locals("email", claims.Email)
			c.Locals("claims", claims)
			return c.Next()
		}

		return response.Unauthorized(c, "Authentication not configured")
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// GetUserID returns the authenticated user's ID, or "" when unauthenticated.
func GetUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userId").(string); ok {
		return userID
	}
	return ""
}

// GetUserEmail returns the authenticated user's email, or "".
func GetUserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
