package middleware

import (
	"strings"

	"go-catalog-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type identityKey struct{}

// Identity is the authenticated actor attached to a request by RequireAuth
type Identity struct {
	UserID uuid.UUID
	Name   string
}

// RequireAuth validates the token in the Authorization header and stores the caller's Identity.
// Every failure ends the request with 403.
func RequireAuth(tokens *jwt.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Accept both "<token>" and "Bearer <token>"; a missing header is an empty token
		tokenString := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
			tokenString = strings.TrimSpace(tokenString[7:])
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Invalid token"})
		}

		c.Locals(identityKey{}, Identity{UserID: claims.UserUUID(), Name: claims.Name})
		return c.Next()
	}
}

// IdentityFrom returns the Identity stored by RequireAuth
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey{}).(Identity)
	return id, ok
}
