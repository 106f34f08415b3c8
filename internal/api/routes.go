package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *Handler, bearerToken string) {
	app.Get("/health", h.Health)

	group := app.Group("/summarize", BearerAuth(bearerToken))
	group.Post("/json", h.SummarizeJSON)
	group.Post("/file", h.SummarizeFile)
}

// BearerAuth rejects requests whose Authorization header does not carry the
// configured token.
func BearerAuth(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		got, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || got != token {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "invalid or missing authentication token",
			})
		}
		return c.Next()
	}
}
