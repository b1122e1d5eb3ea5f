package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopstack/studio-api/pkg/response"
)

// GatewayAuthMiddleware trusts the X-User-* identity headers stamped by the
// gateway's ForwardAuth step. Only for deployments where the service is not
// reachable except through the gateway.
func GatewayAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-Id")
		if userID == "" {
			return response.Unauthorized(c, "Missing user identity headers")
		}

		c.Locals("userId", userID)
		c.Locals("email", c.Get("X-User-Email"))
		c.Locals("name", c.Get("X-User-Name"))

		return c.Next()
	}
}
