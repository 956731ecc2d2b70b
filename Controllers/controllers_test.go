package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Garage/Models"
)

// newTestApp wires the controllers onto a bare fiber app with a private
// in-memory database. Auth middleware is left off; it is exercised against
// the live cookie flow, not here.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Models.User{},
		&Models.Company{},
		&Models.ChecklistItem{},
		&Models.PartMemory{},
		&Models.Visit{},
		&Models.VisitChecklistLine{},
		&Models.VisitPhoto{},
	))

	app := fiber.New()
	visitController := NewVisitController(db)
	checklistController := NewChecklistController(db)
	backupController := NewBackupController(db)
	resetController := NewResetController(db, "STE-2026")

	api := app.Group("/api")
	visits := api.Group("/visits")
	visits.Get("/", visitController.GetVisits)
	visits.Post("/", visitController.CreateVisit)
	visits.Get("/history", visitController.GetHistory)
	visits.Get("/:id", visitController.GetVisit)
	visits.Put("/:id/save", visitController.SaveVisit)
	visits.Post("/:id/lines", visitController.AddLine)
	api.Get("/checklist", checklistController.GetItems)
	api.Post("/checklist", checklistController.AddItem)
	api.Delete("/checklist/:id", checklistController.DeleteItem)
	api.Get("/backup", backupController.Export)
	api.Post("/reset", resetController.Reset)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func seedCatalog(t *testing.T, db *gorm.DB, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, db.Create(&Models.ChecklistItem{Category: p[0], Name: p[1]}).Error)
	}
}

func strPtr(s string) *string { return &s }
