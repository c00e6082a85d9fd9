package chat

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
)

// SetupChatRoutes sets up the finance approval chat routes
func SetupChatRoutes(app *fiber.App) {
	api := app.Group("/api/chat")

	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, config.GetDB())
	})

	api.Use(ChatAuthMiddleware)

	api.Get("/requests", func(c *fiber.Ctx) error {
		return GetRequestsAPI(c, config.GetDB())
	})
	api.Post("/requests", func(c *fiber.Ctx) error {
		return CreateRequestAPI(c, config.GetDB())
	})
	api.Post("/requests/:id/approve", func(c *fiber.Ctx) error {
		return ApproveRequestAPI(c, config.GetDB())
	})
	api.Post("/requests/:id/reject", func(c *fiber.Ctx) error {
		return RejectRequestAPI(c, config.GetDB())
	})

	api.Get("/requests/:id/messages", func(c *fiber.Ctx) error {
		return GetMessagesAPI(c, config.GetDB())
	})
	api.Post("/requests/:id/messages", func(c *fiber.Ctx) error {
		return SendMessageAPI(c, config.GetDB())
	})
}
