package students

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupStudentsRoutes sets up the student, dropout and roll allocation routes
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, config.GetDB())
	})

	api.Get("/dropouts", func(c *fiber.Ctx) error {
		return GetDropoutsAPI(c, config.GetDB())
	})
	api.Post("/mark-dropout", func(c *fiber.Ctx) error {
		return MarkDropoutAPI(c, config.GetDB())
	})
	api.Post("/mark-admit", func(c *fiber.Ctx) error {
		return MarkAdmitAPI(c, config.GetDB())
	})

	api.Post("/rolls/save", func(c *fiber.Ctx) error {
		return SaveRollAllocationsAPI(c, config.GetDB())
	})
	api.Post("/rolls/generate", func(c *fiber.Ctx) error {
		return AutoGenerateRollsAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, config.GetDB())
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, config.GetDB())
	})
	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, config.GetDB())
	})
}
