package finance

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

// SetupFinanceRoutes sets up the accounts, transactions and ledger routes
func SetupFinanceRoutes(app *fiber.App) {
	api := app.Group("/api/finance")
	api.Use(auth.AuthMiddleware)

	api.Get("/accounts", func(c *fiber.Ctx) error {
		return GetAccountsAPI(c, config.GetDB())
	})
	api.Post("/accounts", func(c *fiber.Ctx) error {
		return CreateAccountAPI(c, config.GetDB())
	})
	api.Put("/accounts/:id", func(c *fiber.Ctx) error {
		return UpdateAccountAPI(c, config.GetDB())
	})
	api.Delete("/accounts/:id", func(c *fiber.Ctx) error {
		return DeleteAccountAPI(c, config.GetDB())
	})

	api.Post("/income", func(c *fiber.Ctx) error {
		return AddIncomeAPI(c, config.GetDB())
	})
	api.Post("/expense", func(c *fiber.Ctx) error {
		return AddExpenseAPI(c, config.GetDB())
	})
	api.Post("/deposit", func(c *fiber.Ctx) error {
		return AddDepositAPI(c, config.GetDB())
	})
	api.Post("/withdrawal", func(c *fiber.Ctx) error {
		return AddWithdrawalAPI(c, config.GetDB())
	})
	api.Post("/self-withdrawal", func(c *fiber.Ctx) error {
		return SelfWithdrawalAPI(c, config.GetDB())
	})

	api.Get("/transactions", func(c *fiber.Ctx) error {
		return GetTransactionsAPI(c, config.GetDB())
	})
	api.Delete("/transactions/:id", func(c *fiber.Ctx) error {
		return DeleteTransactionAPI(c, config.GetDB())
	})

	api.Get("/ledger", func(c *fiber.Ctx) error {
		return LedgerReportAPI(c, config.GetDB())
	})

	api.Get("/categories", func(c *fiber.Ctx) error {
		return GetCategoriesAPI(c, config.GetDB())
	})
	api.Post("/categories", func(c *fiber.Ctx) error {
		return CreateCategoryAPI(c, config.GetDB())
	})
	api.Delete("/categories/:id", func(c *fiber.Ctx) error {
		return DeleteCategoryAPI(c, config.GetDB())
	})
}
