package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Garage/Models"
)

// ExportController produces the visit-history Excel download.
type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportVisits writes the filtered visit list to an xlsx file. Accepts the
// same from/to/q filters as the history view.
// GET /api/visits/export
func (ec *ExportController) ExportVisits(ctx *fiber.Ctx) error {
	query := ec.DB.Scopes(visitSearchScope(ctx.Query("q")))
	if from, err := time.Parse("2006-01-02", ctx.Query("from")); err == nil {
		query = query.Where("date_in >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", ctx.Query("to")); err == nil {
		query = query.Where("date_in < ?", to.AddDate(0, 0, 1))
	}

	var visits []Models.Visit
	if err := query.Order("id ASC").Find(&visits).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Visits"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"ID", "Job No", "Date In", "Date Out", "Plate", "VIN", "Model", "KM",
		"Customer", "Phone", "Email", "Total Parts", "Total Labor", "Total",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, v := range visits {
		values := []interface{}{
			v.ID,
			v.JobNo,
			formatCellDate(v.DateIn),
			formatCellDate(v.DateOut),
			v.PlateNumber,
			v.VIN,
			v.VehicleModel,
			v.KM,
			v.CustomerName,
			v.Phone,
			v.Email,
			v.TotalParts.StringFixed(2),
			v.TotalLabor.StringFixed(2),
			v.TotalAmount.StringFixed(2),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to build export",
			"message": err.Error(),
		})
	}

	filename := fmt.Sprintf("visits_%s.xlsx", time.Now().Format("20060102_1504"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(buf.Bytes())
}

func formatCellDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
