package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// LocalCaller key de c.Locals con la identidad verificada del vendedor.
const LocalCaller = "caller"

// AuthMiddleware extrae y valida el Bearer Token JWT si está presente.
// Sin header la request sigue como anónima: newUser y authenticateUser no
// requieren token, y las demás operaciones fallan con UNAUTHENTICATED dentro
// del resolver. Un token presente pero inválido sí corta con 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "token vacío")
		}
		caller, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "token inválido o expirado")
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"errors": []fiber.Map{
			{"message": msg, "extensions": fiber.Map{"code": "INVALID_TOKEN"}},
		},
	})
}

// CallerFrom devuelve la identidad del vendedor puesta por AuthMiddleware.
func CallerFrom(c *fiber.Ctx) (jwt.Identity, bool) {
	id, ok := c.Locals(LocalCaller).(jwt.Identity)
	return id, ok
}
