package Controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Models"
)

// CompanyController manages the letterhead singleton used on printed job
// cards.
type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

// GetCompany returns the letterhead row.
// GET /api/company
func (cc *CompanyController) GetCompany(ctx *fiber.Ctx) error {
	company, err := Models.GetCompany(cc.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	return ctx.JSON(company)
}

// UpdateCompany overwrites the letterhead row.
// PUT /api/company
func (cc *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	var req Models.CompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "name is required",
		})
	}

	company, err := Models.GetCompany(cc.DB)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	lines, err := json.Marshal(req.AddressLines)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid address lines",
			"message": err.Error(),
		})
	}

	company.Name = req.Name
	company.AddressLines = lines
	company.Tel = req.Tel
	company.Fax = req.Fax
	company.Email = req.Email
	company.VATNumber = req.VATNumber
	company.TaxID = req.TaxID

	if err := cc.DB.Save(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save company",
			"message": err.Error(),
		})
	}

	return ctx.JSON(company)
}
