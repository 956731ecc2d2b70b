package Controllers

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Models"
)

// ResetController clears visit data between test runs and go-live. The
// operation fails closed: a wrong code deletes nothing.
type ResetController struct {
	DB        *gorm.DB
	ResetCode string
}

func NewResetController(db *gorm.DB, resetCode string) *ResetController {
	return &ResetController{DB: db, ResetCode: resetCode}
}

type resetRequest struct {
	ResetCode string `json:"reset_code"`
}

// Reset deletes every visit and its lines. The catalog, part memories,
// company row and users survive.
// POST /api/reset
func (rc *ResetController) Reset(ctx *fiber.Ctx) error {
	var req resetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	code := strings.TrimSpace(req.ResetCode)
	if subtle.ConstantTimeCompare([]byte(code), []byte(rc.ResetCode)) != 1 {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "Reset rejected",
			"message": "Reset code does not match",
		})
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&Models.VisitChecklistLine{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&Models.VisitPhoto{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&Models.Visit{}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to reset",
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{"message": "All visits deleted"})
}
