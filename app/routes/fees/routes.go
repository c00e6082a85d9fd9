package fees

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupFeesRoutes sets up the fee structure, assignment and collection routes
func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/heads", func(c *fiber.Ctx) error {
		return GetFeeHeadsAPI(c, config.GetDB())
	})
	api.Post("/heads", func(c *fiber.Ctx) error {
		return CreateFeeHeadAPI(c, config.GetDB())
	})
	api.Put("/heads/:id", func(c *fiber.Ctx) error {
		return UpdateFeeHeadAPI(c, config.GetDB())
	})
	api.Delete("/heads/:id", func(c *fiber.Ctx) error {
		return DeleteFeeHeadAPI(c, config.GetDB())
	})

	api.Get("/types", func(c *fiber.Ctx) error {
		return GetFeeTypesAPI(c, config.GetDB())
	})
	api.Post("/types", func(c *fiber.Ctx) error {
		return CreateFeeTypeAPI(c, config.GetDB())
	})
	api.Delete("/types/:id", func(c *fiber.Ctx) error {
		return DeleteFeeTypeAPI(c, config.GetDB())
	})

	api.Get("/master", func(c *fiber.Ctx) error {
		return GetFeeMastersAPI(c, config.GetDB())
	})
	api.Post("/master", func(c *fiber.Ctx) error {
		return CreateFeeMasterAPI(c, config.GetDB())
	})
	api.Put("/master/:id", func(c *fiber.Ctx) error {
		return UpdateFeeMasterAPI(c, config.GetDB())
	})
	api.Delete("/master/:id", func(c *fiber.Ctx) error {
		return DeleteFeeMasterAPI(c, config.GetDB())
	})

	api.Post("/assign", func(c *fiber.Ctx) error {
		return AssignFeeAPI(c, config.GetDB())
	})
	api.Post("/assign/bulk", func(c *fiber.Ctx) error {
		return BulkAssignFeesAPI(c, config.GetDB())
	})
	api.Get("/assigned", func(c *fiber.Ctx) error {
		return GetAssignedFeesAPI(c, config.GetDB())
	})
	api.Delete("/assigned/:id", func(c *fiber.Ctx) error {
		return DeleteAssignedFeeAPI(c, config.GetDB())
	})

	api.Post("/collect", func(c *fiber.Ctx) error {
		return CollectPaymentAPI(c, config.GetDB())
	})
	api.Get("/payments", func(c *fiber.Ctx) error {
		return GetPaymentsAPI(c, config.GetDB())
	})
	api.Delete("/payments/:id", func(c *fiber.Ctx) error {
		return DeletePaymentAPI(c, config.GetDB())
	})

	api.Get("/head-wise", func(c *fiber.Ctx) error {
		return HeadWiseSummaryAPI(c, config.GetDB())
	})
}
