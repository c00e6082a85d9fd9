package papers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupPapersRoutes sets up the exam paper archive routes
func SetupPapersRoutes(app *fiber.App) {
	api := app.Group("/api/papers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPapersAPI(c, config.GetDB())
	})
	api.Post("/upload", func(c *fiber.Ctx) error {
		return UploadPaperAPI(c, config.GetDB())
	})
	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeletePaperAPI(c, config.GetDB())
	})
}
