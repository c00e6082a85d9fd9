package chat

import (
	"database/sql"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/config"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/routes/auth"
)

func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	type loginRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(400, "Username and password are required")
	}

	user, err := database.GetChatUserByUsername(db, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(401, "Invalid credentials")
		}
		return fiber.NewError(500, "Database error")
	}
	if !user.Active {
		return fiber.NewError(401, "Account is disabled")
	}
	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return fiber.NewError(401, "Invalid credentials")
	}

	token, err := GenerateChatJWT(user)
	if err != nil {
		return fiber.NewError(500, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// CreateRequestAPI raises a spending request. Accountants only.
func CreateRequestAPI(c *fiber.Ctx, db *sql.DB) error {
	user := currentChatUser(c)
	if user.Role != models.RoleAccountant {
		return fiber.NewError(403, "Only accountants can raise requests")
	}

	type requestPayload struct {
		Amount  float64 `json:"amount" form:"amount"`
		Purpose string  `json:"purpose" form:"purpose"`
	}
	var req requestPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	if req.Amount <= 0 {
		return fiber.NewError(400, "Amount must be greater than zero")
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return fiber.NewError(400, "Purpose is required")
	}

	var attachment *string
	if file, ferr := c.FormFile("attachment"); ferr == nil && file != nil {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDirChat, name)); err != nil {
			return fiber.NewError(500, "Failed to store attachment")
		}
		attachment = &name
	}

	fr := &models.FinanceRequest{
		RequesterID:   user.UserID,
		RequesterName: user.FullName,
		Amount:        req.Amount,
		Purpose:       req.Purpose,
		Attachment:    attachment,
	}
	if err := database.CreateFinanceRequest(db, fr); err != nil {
		return fiber.NewError(500, "Failed to create request")
	}

	return c.JSON(fiber.Map{"success": true, "request": fr})
}

// GetRequestsAPI lists requests. Admins see everything; accountants only
// their own.
func GetRequestsAPI(c *fiber.Ctx, db *sql.DB) error {
	user := currentChatUser(c)

	requesterID := 0
	if user.Role != models.RoleAdmin {
		requesterID = user.UserID
	}

	requests, err := database.GetFinanceRequests(db, c.Query("status"), requesterID)
	if err != nil {
		return fiber.NewError(500, "Failed to load requests")
	}
	return c.JSON(fiber.Map{"success": true, "requests": requests})
}

func settleRequest(c *fiber.Ctx, db *sql.DB, status models.RequestStatus) error {
	user := currentChatUser(c)
	if user.Role != models.RoleAdmin {
		return fiber.NewError(403, "Only admins can settle requests")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid request id")
	}

	type settlePayload struct {
		Remarks string `json:"remarks" form:"remarks"`
	}
	var req settlePayload
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return fiber.NewError(400, "Invalid request")
	}

	if err := database.SettleFinanceRequest(db, id, status, req.Remarks); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Request not found or already settled")
		}
		return fiber.NewError(500, "Failed to update request")
	}
	return c.JSON(fiber.Map{"success": true, "status": status})
}

func ApproveRequestAPI(c *fiber.Ctx, db *sql.DB) error {
	return settleRequest(c, db, models.RequestApproved)
}

func RejectRequestAPI(c *fiber.Ctx, db *sql.DB) error {
	return settleRequest(c, db, models.RequestRejected)
}

func GetMessagesAPI(c *fiber.Ctx, db *sql.DB) error {
	user := currentChatUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid request id")
	}

	request, err := database.GetFinanceRequestByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Request not found")
		}
		return fiber.NewError(500, "Database error")
	}
	if user.Role != models.RoleAdmin && request.RequesterID != user.UserID {
		return fiber.NewError(403, "Not your request")
	}

	msgs, err := database.GetChatMessages(db, id)
	if err != nil {
		return fiber.NewError(500, "Failed to load messages")
	}
	return c.JSON(fiber.Map{"success": true, "request": request, "messages": msgs})
}

func SendMessageAPI(c *fiber.Ctx, db *sql.DB) error {
	user := currentChatUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid request id")
	}

	request, err := database.GetFinanceRequestByID(db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Request not found")
		}
		return fiber.NewError(500, "Database error")
	}
	if user.Role != models.RoleAdmin && request.RequesterID != user.UserID {
		return fiber.NewError(403, "Not your request")
	}

	message := strings.TrimSpace(c.FormValue("message"))

	var fileURL *string
	if file, ferr := c.FormFile("file"); ferr == nil && file != nil {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDirChat, name)); err != nil {
			return fiber.NewError(500, "Failed to store file")
		}
		fileURL = &name
	}

	if message == "" && fileURL == nil {
		return fiber.NewError(400, "Message text or file is required")
	}

	m := &models.ChatMessage{
		RequestID:  id,
		SenderID:   user.UserID,
		SenderName: user.FullName,
		Message:    message,
		FileURL:    fileURL,
	}
	if err := database.CreateChatMessage(db, m); err != nil {
		return fiber.NewError(500, "Failed to send message")
	}

	return c.JSON(fiber.Map{"success": true, "message": m})
}
