package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/chat"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/dashboard"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/fees"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/finance"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/masters"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/papers"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/students"
)

// errorHandler turns every handler error into the structured failure shape
// clients expect. Internal error text never reaches the caller for 500s.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusInternalServerError {
		log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func main() {
	// Set global time zone to India Standard Time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*60*60+30*60)
	} else {
		time.Local = loc
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    16 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded files (receipts, papers, chat attachments)
	app.Static("/static", "./static")

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return fiber.NewError(503, "Database unreachable")
		}
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	fees.SetupFeesRoutes(app)
	finance.SetupFinanceRoutes(app)
	papers.SetupPapersRoutes(app)
	chat.SetupChatRoutes(app)
	masters.SetupMastersRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
