package chat

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// The approval chat keeps its own user table and its own token audience so
// back-office sessions and chat sessions cannot be swapped.

type chatClaims struct {
	UserID   int             `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Role     models.ChatRole `json:"role"`
	jwt.RegisteredClaims
}

func chatJWTSecret() []byte {
	return []byte(config.JWTSecret())
}

func GenerateChatJWT(u *models.ChatUser) (string, error) {
	claims := chatClaims{
		UserID:   u.UserID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "tatwadarsha-erp",
			Audience:  jwt.ClaimStrings{"finance-chat"},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(chatJWTSecret())
}

func validateChatJWT(tokenString string) (*chatClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &chatClaims{}, func(token *jwt.Token) (interface{}, error) {
		return chatJWTSecret(), nil
	}, jwt.WithAudience("finance-chat"))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*chatClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

// ChatAuthMiddleware validates the chat token from the Authorization header
// and loads the chat user into the request context.
func ChatAuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return fiber.NewError(401, "No token found")
	}

	claims, err := validateChatJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return fiber.NewError(401, "Invalid token")
	}

	c.Locals("chat_user", &models.ChatUser{
		UserID:   claims.UserID,
		Username: claims.Username,
		FullName: claims.FullName,
		Role:     claims.Role,
		Active:   true,
	})
	return c.Next()
}

func currentChatUser(c *fiber.Ctx) *models.ChatUser {
	return c.Locals("chat_user").(*models.ChatUser)
}
