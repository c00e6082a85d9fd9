package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
	auth.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT from the cookie or the Authorization
// header and loads the claims into the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")

	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return fiber.NewError(401, "No token found")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return fiber.NewError(401, "Invalid token")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_first_name", claims.FirstName)
	c.Locals("user_last_name", claims.LastName)

	return c.Next()
}
