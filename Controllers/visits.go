package Controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Garage/Models"
	"Garage/Selection"
)

// VisitController handles the visit lifecycle: create, list, view, the
// save-all mutation and the add-line action.
type VisitController struct {
	DB *gorm.DB
}

func NewVisitController(db *gorm.DB) *VisitController {
	return &VisitController{DB: db}
}

// visitSearchScope applies the free-text filter used by the list, search
// and history views.
func visitSearchScope(q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		q = strings.TrimSpace(q)
		if q == "" {
			return db
		}
		p := "%" + q + "%"
		return db.Where(
			"customer_name LIKE ? OR plate_number LIKE ? OR phone LIKE ? OR email LIKE ? OR model LIKE ? OR vin LIKE ? OR job_no LIKE ?",
			p, p, p, p, p, p, p,
		)
	}
}

// GetVisits lists visits newest first, optionally filtered by ?q=.
// GET /api/visits
func (vc *VisitController) GetVisits(ctx *fiber.Ctx) error {
	var visits []Models.Visit
	err := vc.DB.Scopes(visitSearchScope(ctx.Query("q"))).
		Order("id DESC").
		Limit(200).
		Find(&visits).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	return ctx.JSON(visits)
}

// GetHistory lists visits filtered by arrival-date range and ?q=.
// GET /api/visits/history
func (vc *VisitController) GetHistory(ctx *fiber.Ctx) error {
	query := vc.DB.Scopes(visitSearchScope(ctx.Query("q")))

	if from, err := time.Parse("2006-01-02", ctx.Query("from")); err == nil {
		query = query.Where("date_in >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", ctx.Query("to")); err == nil {
		query = query.Where("date_in < ?", to.AddDate(0, 0, 1))
	}

	var visits []Models.Visit
	if err := query.Order("id DESC").Limit(500).Find(&visits).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	return ctx.JSON(visits)
}

// CreateVisit opens a new work-order. The current checklist catalog is
// copied into the visit as its own lines, so later catalog edits never
// change this visit.
// POST /api/visits
func (vc *VisitController) CreateVisit(ctx *fiber.Ctx) error {
	now := time.Now()
	visit := Models.Visit{DateIn: &now}

	tx := vc.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Transaction error",
			"message": tx.Error.Error(),
		})
	}

	if err := tx.Create(&visit).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create visit",
			"message": err.Error(),
		})
	}

	var items []Models.ChecklistItem
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load checklist",
			"message": err.Error(),
		})
	}

	for _, item := range items {
		line := Models.VisitChecklistLine{
			VisitID:  visit.ID,
			Category: item.Category,
			ItemName: item.Name,
			Result:   Selection.ResultOK,
		}
		if err := tx.Create(&line).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to seed checklist lines",
				"message": err.Error(),
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to commit transaction",
			"message": err.Error(),
		})
	}

	vc.DB.Preload("Lines", orderLines).First(&visit, visit.ID)
	return ctx.Status(fiber.StatusCreated).JSON(visit)
}

func orderLines(db *gorm.DB) *gorm.DB {
	return db.Order("category ASC, id ASC")
}

// GetVisit returns one visit with its ordered lines. Blank part codes are
// pre-filled from part memory for the vehicle model; values the operator
// already entered are left alone. ?mode=selected narrows the lines to the
// printable subset.
// GET /api/visits/:id
func (vc *VisitController) GetVisit(ctx *fiber.Ctx) error {
	visit, ok := vc.findVisit(ctx)
	if !ok {
		return nil
	}

	var lines []Models.VisitChecklistLine
	if err := vc.DB.Where("visit_id = ?", visit.ID).Scopes(orderLines).Find(&lines).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	mem, err := Models.LookupPartMemory(vc.DB, Selection.ModelKey(visit.VehicleModel))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}
	// Select on stored values first, then fill blanks for display. A code
	// coming from memory is a suggestion, not an edit, so it must not pull
	// a line into the printable subset.
	mode := ctx.Query("mode", "all")
	shown := lines
	if mode == "selected" {
		shown = Selection.SelectedLines(lines)
	}
	shown = Selection.FillFromMemory(shown, mem)

	return ctx.JSON(fiber.Map{
		"visit": visit,
		"lines": shown,
		"mode":  mode,
	})
}

// SaveVisit is the single mutation entry point for editing a visit. Visit
// fields update partially (absent keys untouched, submitted empty strings
// written verbatim), line fields are coerced rather than rejected, an
// optional new line is appended after the existing lines are updated, part
// memory is upserted and the totals recomputed — all in one transaction.
// PUT /api/visits/:id/save
func (vc *VisitController) SaveVisit(ctx *fiber.Ctx) error {
	visit, ok := vc.findVisit(ctx)
	if !ok {
		return nil
	}

	var req Models.SaveVisitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	tx := vc.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Transaction error",
			"message": tx.Error.Error(),
		})
	}

	applyVisitFields(&visit, req)

	var lines []Models.VisitChecklistLine
	if err := tx.Where("visit_id = ?", visit.ID).Find(&lines).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Database error",
			"message": err.Error(),
		})
	}

	submitted := make(map[uint]Models.SaveLineRequest, len(req.Lines))
	for _, lr := range req.Lines {
		submitted[lr.ID] = lr
	}

	modelKey := Selection.ModelKey(visit.VehicleModel)
	for i := range lines {
		lr, ok := submitted[lines[i].ID]
		if !ok {
			continue
		}
		lines[i].Result = Selection.ParseResult(lr.Result)
		lines[i].Notes = strings.TrimSpace(lr.Notes)
		lines[i].PartsCode = strings.TrimSpace(lr.PartsCode)
		lines[i].PartsQty = Selection.ParseQty(lr.PartsQty)
		lines[i].ExcludeFromPrint = lr.ExcludeFromPrint
		lines[i].PartsCost = Selection.ParseCost(lr.PartsCost)
		lines[i].LaborCost = Selection.ParseCost(lr.LaborCost)
		lines[i].LineTotal = Selection.LineTotal(lines[i])

		if err := tx.Save(&lines[i]).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to save line",
				"message": err.Error(),
			})
		}

		if err := Models.UpsertPartMemory(tx, modelKey, lines[i].Category, lines[i].ItemName, lines[i].PartsCode); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update part memory",
				"message": err.Error(),
			})
		}
	}

	// The new line goes in after the existing lines are updated so adding
	// one never discards edits made in the same submission.
	newCat := strings.TrimSpace(req.NewCategory)
	newItem := strings.TrimSpace(req.NewItem)
	if newCat != "" && newItem != "" {
		if req.MakePermanent {
			if err := Models.AddChecklistItem(tx, newCat, newItem); err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to update checklist",
					"message": err.Error(),
				})
			}
		}
		if err := appendVisitLine(tx, visit.ID, newCat, newItem); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to add line",
				"message": err.Error(),
			})
		}
	}

	if err := recomputeTotals(tx, &visit); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save visit",
			"message": err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to commit transaction",
			"message": err.Error(),
		})
	}

	vc.DB.Preload("Lines", orderLines).First(&visit, visit.ID)
	return ctx.JSON(visit)
}

// AddLine appends one row to the visit, optionally adding the pair to the
// master catalog as well. A row the visit already carries is skipped.
// POST /api/visits/:id/lines
func (vc *VisitController) AddLine(ctx *fiber.Ctx) error {
	visit, ok := vc.findVisit(ctx)
	if !ok {
		return nil
	}

	var req Models.AddLineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}
	req.Category = strings.TrimSpace(req.Category)
	req.ItemName = strings.TrimSpace(req.ItemName)
	if err := validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"message": "category and item_name are required",
		})
	}

	tx := vc.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Transaction error",
			"message": tx.Error.Error(),
		})
	}

	if req.MakePermanent {
		if err := Models.AddChecklistItem(tx, req.Category, req.ItemName); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to update checklist",
				"message": err.Error(),
			})
		}
	}

	if err := appendVisitLine(tx, visit.ID, req.Category, req.ItemName); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to add line",
			"message": err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to commit transaction",
			"message": err.Error(),
		})
	}

	vc.DB.Preload("Lines", orderLines).First(&visit, visit.ID)
	return ctx.Status(fiber.StatusCreated).JSON(visit)
}

// findVisit resolves the :id param, writing the error response itself when
// the visit cannot be loaded.
func (vc *VisitController) findVisit(ctx *fiber.Ctx) (Models.Visit, bool) {
	var visit Models.Visit
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid ID",
			"message": "ID must be a valid number",
		})
		return visit, false
	}
	if err := vc.DB.First(&visit, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Visit not found",
				"message": "The specified visit does not exist",
			})
		} else {
			ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Database error",
				"message": err.Error(),
			})
		}
		return visit, false
	}
	return visit, true
}

// applyVisitFields copies the submitted visit fields over. Only pointers
// that are set are applied; an explicit empty string is written verbatim.
func applyVisitFields(visit *Models.Visit, req Models.SaveVisitRequest) {
	if req.JobNo != nil {
		visit.JobNo = strings.TrimSpace(*req.JobNo)
	}
	if req.PlateNumber != nil {
		visit.PlateNumber = strings.TrimSpace(*req.PlateNumber)
	}
	if req.VIN != nil {
		visit.VIN = strings.TrimSpace(*req.VIN)
	}
	if req.VehicleModel != nil {
		visit.VehicleModel = strings.TrimSpace(*req.VehicleModel)
	}
	if req.KM != nil {
		visit.KM = strings.TrimSpace(*req.KM)
	}
	if req.CustomerName != nil {
		visit.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.Phone != nil {
		visit.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		visit.Email = strings.TrimSpace(*req.Email)
	}
	if req.CustomerComplaint != nil {
		visit.CustomerComplaint = strings.TrimSpace(*req.CustomerComplaint)
	}
	if req.NotesGeneral != nil {
		visit.NotesGeneral = strings.TrimSpace(*req.NotesGeneral)
	}

	if t := parseDateTime(req.DateIn, req.TimeIn); t != nil {
		visit.DateIn = t
	}
	if t := parseDateTime(req.DateOut, req.TimeOut); t != nil {
		visit.DateOut = t
	}
}

// parseDateTime combines separate date and time inputs. A missing or
// unparsable date yields nil and the stored value is kept.
func parseDateTime(dateP, timeP *string) *time.Time {
	if dateP == nil {
		return nil
	}
	dateS := strings.TrimSpace(*dateP)
	if dateS == "" {
		return nil
	}
	timeS := "00:00"
	if timeP != nil && strings.TrimSpace(*timeP) != "" {
		timeS = strings.TrimSpace(*timeP)
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", dateS+" "+timeS, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// appendVisitLine adds a fresh OK row unless the visit already has one for
// the same category and item.
func appendVisitLine(tx *gorm.DB, visitID uint, category, itemName string) error {
	var existing Models.VisitChecklistLine
	err := tx.Where("visit_id = ? AND category = ? AND item_name = ?", visitID, category, itemName).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return tx.Create(&Models.VisitChecklistLine{
		VisitID:  visitID,
		Category: category,
		ItemName: itemName,
		Result:   Selection.ResultOK,
	}).Error
}

// recomputeTotals re-runs the visit-wide rollup and stores it. Always
// called inside the same transaction as the line mutation.
func recomputeTotals(tx *gorm.DB, visit *Models.Visit) error {
	var lines []Models.VisitChecklistLine
	if err := tx.Where("visit_id = ?", visit.ID).Find(&lines).Error; err != nil {
		return err
	}
	totals := Selection.Rollup(lines)
	visit.TotalParts = totals.Parts
	visit.TotalLabor = totals.Labor
	visit.TotalAmount = totals.Amount
	return tx.Save(visit).Error
}
