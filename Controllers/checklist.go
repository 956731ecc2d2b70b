package Controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Models"
)

// ChecklistController manages the master checklist catalog. Deleting an
// item never touches lines on existing visits; they are snapshots.
type ChecklistController struct {
	DB *gorm.DB
}

func NewChecklistController(db *gorm.DB) *ChecklistController {
	return &ChecklistController{DB: db}
}

// GetItems lists the catalog grouped in display order.
// GET /api/checklist
func (cc *ChecklistController) GetItems(ctx *fiber.Ctx) error {
	var items []Models.ChecklistItem
	if err := cc.DB.Order("category ASC, id ASC").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	return ctx.JSON(items)
}

// AddItem inserts a catalog entry. A duplicate (category, name) pair is an
// error-free no-op.
// POST /api/checklist
func (cc *ChecklistController) AddItem(ctx *fiber.Ctx) error {
	var req Models.ChecklistItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}
	req.Category = strings.TrimSpace(req.Category)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "category and name are required",
		})
	}

	if err := Models.AddChecklistItem(cc.DB, req.Category, req.Name); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to add checklist item",
			"message": err.Error(),
		})
	}

	var item Models.ChecklistItem
	cc.DB.Where("category = ? AND name = ?", req.Category, req.Name).First(&item)
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// DeleteItem removes a catalog entry if present.
// DELETE /api/checklist/:id
func (cc *ChecklistController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
	}

	var item Models.ChecklistItem
	if err := cc.DB.First(&item, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Checklist item not found",
				"message": "The specified item does not exist",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	if err := cc.DB.Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete checklist item",
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{"message": "Checklist item deleted"})
}
