package masters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupMastersRoutes sets up the reference list routes
func SetupMastersRoutes(app *fiber.App) {
	api := app.Group("/api/masters")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetMastersAPI(c, config.GetDB())
	})
	api.Get("/:name/items", func(c *fiber.Ctx) error {
		return GetMasterItemsAPI(c, config.GetDB())
	})
	api.Post("/:name/items", func(c *fiber.Ctx) error {
		return AddMasterItemAPI(c, config.GetDB())
	})
	api.Put("/items/:id", func(c *fiber.Ctx) error {
		return UpdateMasterItemAPI(c, config.GetDB())
	})
	api.Delete("/items/:id", func(c *fiber.Ctx) error {
		return DeleteMasterItemAPI(c, config.GetDB())
	})
}
