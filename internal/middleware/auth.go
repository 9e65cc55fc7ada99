package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abdul977/diamondbakes-sub000/internal/config"
	"github.com/abdul977/diamondbakes-sub000/internal/models"
	"github.com/abdul977/diamondbakes-sub000/internal/store"
	"github.com/abdul977/diamondbakes-sub000/internal/utils"
)

const adminContextKey = "currentAdmin"

// TokenCookie is the cookie the login endpoint sets and Protect reads.
const TokenCookie = "token"

// Protect validates the JWT (cookie first, then bearer header), loads the
// admin it identifies, and attaches it to the request context.
func Protect(cfg *config.Config, admins store.AdminStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			log.Printf("auth: %s %s rejected: no token", c.Method(), c.Path())
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		adminID, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			log.Printf("auth: %s %s rejected: %v", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		admin, err := admins.GetByID(c.Context(), adminID)
		if err != nil {
			if err == store.ErrNotFound {
				log.Printf("auth: %s %s rejected: token for unknown admin %s", c.Method(), c.Path(), adminID)
				return fiber.NewError(fiber.StatusUnauthorized, "Admin for this token no longer exists")
			}
			return err
		}

		c.Locals(adminContextKey, admin)
		return c.Next()
	}
}

// Authorize restricts a route to the given roles. It must run after
// Protect.
func Authorize(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		admin, ok := CurrentAdmin(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
		}

		if !allowed[admin.Role] {
			log.Printf("auth: %s %s forbidden for role %s", c.Method(), c.Path(), admin.Role)
			return fiber.NewError(fiber.StatusForbidden,
				"Role "+admin.Role+" is not authorized to access "+c.Path())
		}

		return c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin from the request context.
func CurrentAdmin(c *fiber.Ctx) (*models.Admin, bool) {
	admin, ok := c.Locals(adminContextKey).(*models.Admin)
	if !ok || admin == nil {
		return nil, false
	}
	return admin, true
}
