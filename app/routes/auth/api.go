package auth

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(400, "Email and password are required")
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(401, "Invalid credentials")
		}
		return fiber.NewError(500, "Database error")
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return fiber.NewError(401, "Invalid credentials")
	}

	token, err := GenerateJWT(user.ID, user.Email, user.FirstName, user.LastName)
	if err != nil {
		return fiber.NewError(500, "Failed to generate token")
	}

	sessionID := GenerateSessionID().String()
	if err := database.CreateSession(config.GetDB(), sessionID, user.ID, GetSessionExpiry()); err != nil {
		return fiber.NewError(500, "Failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Expires:  GetSessionExpiry(),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	if sessionID := c.Cookies("session_id"); sessionID != "" {
		if err := database.DeleteSession(config.GetDB(), sessionID); err != nil {
			log.Printf("Failed to delete session %s: %v", sessionID, err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "session_id",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if len(req.NewPassword) < 8 {
		return fiber.NewError(400, "New password must be at least 8 characters")
	}

	userID := c.Locals("user_id").(string)
	userEmail := c.Locals("user_email").(string)

	user, err := database.GetUserByEmail(config.GetDB(), userEmail)
	if err != nil {
		return fiber.NewError(500, "Database error")
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return fiber.NewError(400, "Current password is incorrect")
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(500, "Failed to hash password")
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return fiber.NewError(500, "Failed to update password")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password changed"})
}

func MeAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "User not found")
		}
		return fiber.NewError(500, "Database error")
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}
