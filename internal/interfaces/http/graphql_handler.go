package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/Ventas-api/internal/interfaces/graphql"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// graphqlRequest cuerpo estándar de un POST GraphQL.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta queries y mutations contra el esquema.
// La identidad del vendedor (si el middleware la dejó en Locals) viaja en el
// contexto de ejecución; los resolvers deciden qué operaciones la exigen.
func GraphQLHandler(schema *gql.Schema, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{
					{"message": "cuerpo JSON inválido", "extensions": fiber.Map{"code": "BAD_USER_INPUT"}},
				},
			})
		}

		ctx := c.UserContext()
		if caller, ok := CallerFrom(c); ok {
			ctx = graphql.WithCaller(ctx, caller)
		}

		resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
		for _, e := range resp.Errors {
			log.Warn().Str("operation", req.OperationName).Str("path", c.Path()).Msg(e.Message)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		out, err := json.Marshal(resp)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"errors": []fiber.Map{
					{"message": "error interno", "extensions": fiber.Map{"code": "INTERNAL"}},
				},
			})
		}
		return c.Send(out)
	}
}
