package masters

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/database"
)

func GetMastersAPI(c *fiber.Ctx, db *sql.DB) error {
	masters, err := database.GetMasters(db)
	if err != nil {
		return fiber.NewError(500, "Failed to load masters")
	}
	return c.JSON(fiber.Map{"success": true, "masters": masters})
}

func GetMasterItemsAPI(c *fiber.Ctx, db *sql.DB) error {
	name := c.Params("name")
	items, err := database.GetMasterItems(db, name)
	if err != nil {
		return fiber.NewError(500, "Failed to load master items")
	}
	return c.JSON(fiber.Map{"success": true, "master": name, "items": items})
}

func AddMasterItemAPI(c *fiber.Ctx, db *sql.DB) error {
	name := c.Params("name")

	type itemRequest struct {
		Name string `json:"name" form:"name"`
	}
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(400, "Item name is required")
	}

	item, err := database.AddMasterItem(db, name, req.Name)
	if err != nil {
		if err == database.ErrDuplicateMasterItem {
			return fiber.NewError(400, "Item already exists in this master")
		}
		return fiber.NewError(500, "Failed to add master item")
	}
	return c.JSON(fiber.Map{"success": true, "item": item})
}

func UpdateMasterItemAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid item id")
	}

	type itemRequest struct {
		Name string `json:"name" form:"name"`
	}
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(400, "Invalid request")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fiber.NewError(400, "Item name is required")
	}

	if err := database.UpdateMasterItem(db, id, req.Name); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Item not found")
		}
		return fiber.NewError(500, "Failed to update master item")
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteMasterItemAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(400, "Invalid item id")
	}
	if err := database.DeleteMasterItem(db, id); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(404, "Item not found")
		}
		return fiber.NewError(500, "Failed to delete master item")
	}
	return c.JSON(fiber.Map{"success": true})
}
