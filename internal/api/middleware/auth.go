package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by RequireAuth.
const (
	LocalsUserID = "user_id"
	LocalsOrgID  = "org_id"
)

// RequireAuth validates the Bearer token and stores the caller's user and
// organization IDs in the request locals. Tokens without an org_id claim
// fall back to the "default" organization.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or malformed authorization header",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token claims",
			})
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				userID = sub
			}
		}
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing user identity",
			})
		}

		orgID, _ := claims["org_id"].(string)
		if orgID == "" {
			orgID = "default"
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsOrgID, orgID)

		return c.Next()
	}
}

// UserID returns the authenticated user ID stored by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}

// OrgID returns the authenticated organization ID stored by RequireAuth.
func OrgID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsOrgID).(string)
	return id
}
