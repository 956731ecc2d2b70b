package Controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Garage/Models"
)

func TestCreateVisitSnapshotsCatalog(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db,
		[2]string{"Φρένα", "Στοπερ μπροστά"},
		[2]string{"Φρένα", "Στοπερ πίσω"},
		[2]string{"Λάδια", "Λάδι μηχανής"},
	)

	resp, raw := doJSON(t, app, "POST", "/api/visits", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))
	require.NotNil(t, visit.DateIn)
	assert.Len(t, visit.Lines, 3)
	for _, line := range visit.Lines {
		assert.Equal(t, "OK", line.Result)
		assert.Zero(t, line.PartsQty)
		assert.False(t, line.ExcludeFromPrint)
		assert.True(t, line.PartsCost.IsZero())
	}

	// a later catalog addition does not leak into the existing visit
	seedCatalog(t, db, [2]string{"Λάδια", "Λάδι gearbox"})
	var count int64
	db.Model(&Models.VisitChecklistLine{}).Where("visit_id = ?", visit.ID).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestSaveVisitPartialFieldUpdate(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))

	// first save sets a few fields
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		CustomerName: strPtr("Maria"),
		PlateNumber:  strPtr("KXY-123"),
		Phone:        strPtr("99123456"),
	})

	// second save omits customer_name, blanks the phone explicitly
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		Phone: strPtr(""),
	})

	var stored Models.Visit
	require.NoError(t, db.First(&stored, visit.ID).Error)
	assert.Equal(t, "Maria", stored.CustomerName, "an absent key leaves the stored value alone")
	assert.Equal(t, "KXY-123", stored.PlateNumber)
	assert.Equal(t, "", stored.Phone, "a submitted empty string is written verbatim")
}

func TestSaveVisitCoercesLineInput(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))
	require.Len(t, visit.Lines, 1)
	lineID := visit.Lines[0].ID

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		Lines: []Models.SaveLineRequest{
			{
				ID:        lineID,
				Result:    "BROKEN",
				PartsQty:  "lots",
				PartsCost: "not-a-number",
				LaborCost: "15.50",
				Notes:     "  brake pads worn  ",
			},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "garbled field input never fails the save")

	var stored Models.VisitChecklistLine
	require.NoError(t, db.First(&stored, lineID).Error)
	assert.Equal(t, "OK", stored.Result, "unknown result defaults to OK")
	assert.Equal(t, 0, stored.PartsQty, "unparsable quantity defaults to 0")
	assert.True(t, stored.PartsCost.IsZero(), "unparsable cost defaults to zero")
	assert.Equal(t, "15.50", stored.LaborCost.StringFixed(2))
	assert.Equal(t, "brake pads worn", stored.Notes)
	assert.Equal(t, "15.50", stored.LineTotal.StringFixed(2))
}

func TestSaveVisitRecomputesTotals(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db,
		[2]string{"Φρένα", "Στοπερ μπροστά"},
		[2]string{"Λάδια", "Λάδι μηχανής"},
	)

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))
	require.Len(t, visit.Lines, 2)

	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		Lines: []Models.SaveLineRequest{
			{ID: visit.Lines[0].ID, Result: "REPAIR", PartsCost: "10.00", LaborCost: "5.00"},
			{ID: visit.Lines[1].ID, Result: "OK", LaborCost: "20.00", ExcludeFromPrint: true},
		},
	})

	var stored Models.Visit
	require.NoError(t, db.First(&stored, visit.ID).Error)
	assert.Equal(t, "10.00", stored.TotalParts.StringFixed(2))
	assert.Equal(t, "25.00", stored.TotalLabor.StringFixed(2))
	assert.Equal(t, "35.00", stored.TotalAmount.StringFixed(2),
		"totals cover every line, print-excluded ones included")
}

func TestSaveVisitAppendsNewLineAfterUpdates(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))

	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		Lines: []Models.SaveLineRequest{
			{ID: visit.Lines[0].ID, Result: "CHECK", Notes: "keep this edit"},
		},
		NewCategory:   "Ηλεκτρικά",
		NewItem:       "Μπαταρία",
		MakePermanent: true,
	})

	var lines []Models.VisitChecklistLine
	require.NoError(t, db.Where("visit_id = ?", visit.ID).Order("id ASC").Find(&lines).Error)
	require.Len(t, lines, 2)
	assert.Equal(t, "CHECK", lines[0].Result, "adding a line never discards same-submission edits")
	assert.Equal(t, "keep this edit", lines[0].Notes)
	assert.Equal(t, "Μπαταρία", lines[1].ItemName)
	assert.Equal(t, "OK", lines[1].Result)

	var item Models.ChecklistItem
	require.NoError(t, db.Where("category = ? AND name = ?", "Ηλεκτρικά", "Μπαταρία").First(&item).Error,
		"permanent flag adds the pair to the master catalog")
}

func TestPartMemoryAutofillRoundTrip(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	// first visit records a part code for the model
	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var first Models.Visit
	require.NoError(t, json.Unmarshal(raw, &first))
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", first.ID), Models.SaveVisitRequest{
		VehicleModel: strPtr("toyota corolla"),
		Lines: []Models.SaveLineRequest{
			{ID: first.Lines[0].ID, Result: "REPAIR", PartsCode: "BP-100"},
		},
	})

	// a later visit for the same model, differing in case and whitespace
	_, raw = doJSON(t, app, "POST", "/api/visits", nil)
	var second Models.Visit
	require.NoError(t, json.Unmarshal(raw, &second))
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", second.ID), Models.SaveVisitRequest{
		VehicleModel: strPtr(" Toyota Corolla "),
	})

	_, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/visits/%d", second.ID), nil)
	var view struct {
		Lines []Models.VisitChecklistLine `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "BP-100", view.Lines[0].PartsCode, "blank code is pre-filled from memory")

	// the fill is render-only, nothing is written
	var stored Models.VisitChecklistLine
	require.NoError(t, db.Where("visit_id = ?", second.ID).First(&stored).Error)
	assert.Equal(t, "", stored.PartsCode)
}

func TestGetVisitSelectedMode(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db,
		[2]string{"Φρένα", "Στοπερ μπροστά"},
		[2]string{"Λάδια", "Λάδι μηχανής"},
	)

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))

	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		Lines: []Models.SaveLineRequest{
			{ID: visit.Lines[0].ID, Result: "CHECK"},
			{ID: visit.Lines[1].ID, Result: "OK"},
		},
	})

	_, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/visits/%d?mode=selected", visit.ID), nil)
	var view struct {
		Lines []Models.VisitChecklistLine `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Len(t, view.Lines, 1)
	assert.Equal(t, "CHECK", view.Lines[0].Result)
}

func TestMemoryFillDoesNotSelect(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	// record a part code for the model on one visit
	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var first Models.Visit
	require.NoError(t, json.Unmarshal(raw, &first))
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", first.ID), Models.SaveVisitRequest{
		VehicleModel: strPtr("toyota corolla"),
		Lines: []Models.SaveLineRequest{
			{ID: first.Lines[0].ID, Result: "REPAIR", PartsCode: "BP-100"},
		},
	})

	// an untouched visit for the same model: the suggested code shows up
	// in the full view but must not make the line printable
	_, raw = doJSON(t, app, "POST", "/api/visits", nil)
	var second Models.Visit
	require.NoError(t, json.Unmarshal(raw, &second))
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", second.ID), Models.SaveVisitRequest{
		VehicleModel: strPtr("toyota corolla"),
	})

	var view struct {
		Lines []Models.VisitChecklistLine `json:"lines"`
	}
	_, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/visits/%d", second.ID), nil)
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "BP-100", view.Lines[0].PartsCode)

	_, raw = doJSON(t, app, "GET", fmt.Sprintf("/api/visits/%d?mode=selected", second.ID), nil)
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Empty(t, view.Lines, "selection runs on stored values, not memory fills")
}

func TestAddLineSkipsDuplicate(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))

	resp, _ := doJSON(t, app, "POST", fmt.Sprintf("/api/visits/%d/lines", visit.ID), Models.AddLineRequest{
		Category: "Φρένα",
		ItemName: "Στοπερ μπροστά",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	db.Model(&Models.VisitChecklistLine{}).Where("visit_id = ?", visit.ID).Count(&count)
	assert.Equal(t, int64(1), count, "a row the visit already has is not duplicated")
}

func TestVisitSearch(t *testing.T) {
	app, db := newTestApp(t)
	seedCatalog(t, db, [2]string{"Φρένα", "Στοπερ μπροστά"})

	_, raw := doJSON(t, app, "POST", "/api/visits", nil)
	var visit Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visit))
	doJSON(t, app, "PUT", fmt.Sprintf("/api/visits/%d/save", visit.ID), Models.SaveVisitRequest{
		CustomerName: strPtr("Andreas Georgiou"),
		PlateNumber:  strPtr("KXY-123"),
	})
	doJSON(t, app, "POST", "/api/visits", nil)

	_, raw = doJSON(t, app, "GET", "/api/visits/?q=KXY", nil)
	var visits []Models.Visit
	require.NoError(t, json.Unmarshal(raw, &visits))
	require.Len(t, visits, 1)
	assert.Equal(t, "Andreas Georgiou", visits[0].CustomerName)
}
