package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupDashboardRoutes sets up the admin landing page routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetStatsAPI(c, config.GetDB())
	})
	api.Get("/balances", func(c *fiber.Ctx) error {
		return GetBalancesAPI(c, config.GetDB())
	})
}

func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load dashboard stats")
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

func GetBalancesAPI(c *fiber.Ctx, db *sql.DB) error {
	balances, err := database.GetAccountBalances(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load account balances")
	}
	return c.JSON(fiber.Map{"success": true, "balances": balances})
}
