package http

import (
	"github.com/gofiber/fiber/v2"
	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RouterDeps dependencias para registrar las rutas.
type RouterDeps struct {
	Schema    *gql.Schema
	JWTSecret string
	Log       *logger.Logger
}

// Router registra el endpoint GraphQL y el health check.
// Todo el API vive en POST /graphql; la autorización es por operación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/graphql", AuthMiddleware(deps.JWTSecret), GraphQLHandler(deps.Schema, deps.Log))
}
