package Controllers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Models"
	"Garage/Selection"
)

// BackupController exports the whole dataset as one JSON document and
// restores from such a document by replacing everything.
type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

// Export downloads a versioned JSON backup.
// GET /api/backup
func (bc *BackupController) Export(ctx *fiber.Ctx) error {
	payload := Models.BackupPayload{
		Version:    1,
		ExportedAt: time.Now().UTC(),
	}

	var items []Models.ChecklistItem
	if err := bc.DB.Order("id ASC").Find(&items).Error; err != nil {
		return bc.dbError(ctx, err)
	}
	for _, it := range items {
		payload.ChecklistItems = append(payload.ChecklistItems, Models.BackupChecklistRow{
			ID: it.ID, Category: it.Category, Name: it.Name,
		})
	}

	var memories []Models.PartMemory
	if err := bc.DB.Order("id ASC").Find(&memories).Error; err != nil {
		return bc.dbError(ctx, err)
	}
	for _, m := range memories {
		updated := m.UpdatedAt
		payload.PartMemories = append(payload.PartMemories, Models.BackupMemoryRow{
			ID:        m.ID,
			ModelKey:  m.ModelKey,
			Category:  m.Category,
			ItemName:  m.ItemName,
			PartsCode: m.PartsCode,
			UpdatedAt: &updated,
		})
	}

	var visits []Models.Visit
	if err := bc.DB.Order("id ASC").Find(&visits).Error; err != nil {
		return bc.dbError(ctx, err)
	}
	for _, v := range visits {
		payload.Visits = append(payload.Visits, Models.BackupVisitRow{
			ID:                v.ID,
			JobNo:             v.JobNo,
			DateIn:            v.DateIn,
			DateOut:           v.DateOut,
			PlateNumber:       v.PlateNumber,
			VIN:               v.VIN,
			VehicleModel:      v.VehicleModel,
			KM:                v.KM,
			CustomerName:      v.CustomerName,
			Phone:             v.Phone,
			Email:             v.Email,
			CustomerComplaint: v.CustomerComplaint,
			NotesGeneral:      v.NotesGeneral,
		})
	}

	var lines []Models.VisitChecklistLine
	if err := bc.DB.Order("id ASC").Find(&lines).Error; err != nil {
		return bc.dbError(ctx, err)
	}
	for _, ln := range lines {
		payload.VisitLines = append(payload.VisitLines, Models.BackupLineRow{
			ID:               ln.ID,
			VisitID:          ln.VisitID,
			Category:         ln.Category,
			ItemName:         ln.ItemName,
			Result:           ln.Result,
			Notes:            ln.Notes,
			PartsCode:        ln.PartsCode,
			PartsQty:         ln.PartsQty,
			ExcludeFromPrint: ln.ExcludeFromPrint,
			PartsCost:        ln.PartsCost,
			LaborCost:        ln.LaborCost,
		})
	}

	filename := fmt.Sprintf("garage_backup_%s.json", time.Now().Format("20060102_1504"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.JSON(payload)
}

// Import replaces the entire dataset from an uploaded backup file. Visit
// IDs are remapped so line ownership survives the new auto-increment
// sequence. Applied in one transaction; a malformed payload changes
// nothing.
// POST /api/backup/import
func (bc *BackupController) Import(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing file",
			"message": "A backup file upload is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Unreadable file",
			"message": err.Error(),
		})
	}
	defer file.Close()

	var payload Models.BackupPayload
	if err := json.NewDecoder(file).Decode(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid backup file",
			"message": err.Error(),
		})
	}

	err = bc.DB.Transaction(func(tx *gorm.DB) error {
		// replace everything
		for _, model := range []interface{}{
			&Models.VisitChecklistLine{},
			&Models.Visit{},
			&Models.PartMemory{},
			&Models.ChecklistItem{},
		} {
			if err := tx.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		for _, it := range payload.ChecklistItems {
			item := Models.ChecklistItem{Category: it.Category, Name: it.Name}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		for _, m := range payload.PartMemories {
			memory := Models.PartMemory{
				ModelKey:  m.ModelKey,
				Category:  m.Category,
				ItemName:  m.ItemName,
				PartsCode: m.PartsCode,
			}
			if err := tx.Create(&memory).Error; err != nil {
				return err
			}
		}

		idMap := make(map[uint]uint, len(payload.Visits))
		for _, v := range payload.Visits {
			visit := Models.Visit{
				JobNo:             v.JobNo,
				DateIn:            v.DateIn,
				DateOut:           v.DateOut,
				PlateNumber:       v.PlateNumber,
				VIN:               v.VIN,
				VehicleModel:      v.VehicleModel,
				KM:                v.KM,
				CustomerName:      v.CustomerName,
				Phone:             v.Phone,
				Email:             v.Email,
				CustomerComplaint: v.CustomerComplaint,
				NotesGeneral:      v.NotesGeneral,
			}
			if err := tx.Create(&visit).Error; err != nil {
				return err
			}
			idMap[v.ID] = visit.ID
		}

		for _, ln := range payload.VisitLines {
			visitID, ok := idMap[ln.VisitID]
			if !ok {
				visitID = ln.VisitID
			}
			line := Models.VisitChecklistLine{
				VisitID:          visitID,
				Category:         ln.Category,
				ItemName:         ln.ItemName,
				Result:           Selection.ParseResult(ln.Result),
				Notes:            ln.Notes,
				PartsCode:        ln.PartsCode,
				PartsQty:         ln.PartsQty,
				ExcludeFromPrint: ln.ExcludeFromPrint,
				PartsCost:        ln.PartsCost,
				LaborCost:        ln.LaborCost,
			}
			line.LineTotal = Selection.LineTotal(line)
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		// restored lines carry costs, so every visit gets fresh totals
		for _, newID := range idMap {
			var visit Models.Visit
			if err := tx.First(&visit, newID).Error; err != nil {
				return err
			}
			if err := recomputeTotals(tx, &visit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to restore backup",
			"message": err.Error(),
		})
	}

	return ctx.JSON(fiber.Map{
		"message": "Backup restored",
		"visits":  len(payload.Visits),
		"lines":   len(payload.VisitLines),
	})
}

func (bc *BackupController) dbError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Database error",
		"message": err.Error(),
	})
}
