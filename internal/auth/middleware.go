package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID = "userID"
	LocalRole   = "role"
)

// Required rejects requests without a valid bearer token and stores the
// caller's id and role in the request locals.
func Required(tm *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authentication token")
		}

		claims, err := tm.Parse(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authentication token")
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// Optional stores the caller's identity when a valid token is present and
// lets anonymous requests through. Used by endpoints whose response differs
// for authenticated callers, such as the owned flag on movie details.
func Optional(tm *TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if claims, err := tm.Parse(token); err == nil {
				c.Locals(LocalUserID, claims.Subject)
				c.Locals(LocalRole, claims.Role)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's id, or "" for anonymous
// requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
