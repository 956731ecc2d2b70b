package Models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BackupPayload is the versioned JSON document produced by the backup
// export and consumed wholesale by the import.
type BackupPayload struct {
	Version        int                  `json:"version"`
	ExportedAt     time.Time            `json:"exported_at"`
	ChecklistItems []BackupChecklistRow `json:"checklist_items"`
	PartMemories   []BackupMemoryRow    `json:"part_memories"`
	Visits         []BackupVisitRow     `json:"visits"`
	VisitLines     []BackupLineRow      `json:"visit_lines"`
}

type BackupChecklistRow struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

type BackupMemoryRow struct {
	ID        uint       `json:"id"`
	ModelKey  string     `json:"model_key"`
	Category  string     `json:"category"`
	ItemName  string     `json:"item_name"`
	PartsCode string     `json:"parts_code"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type BackupVisitRow struct {
	ID                uint       `json:"id"`
	JobNo             string     `json:"job_no"`
	DateIn            *time.Time `json:"date_in"`
	DateOut           *time.Time `json:"date_out"`
	PlateNumber       string     `json:"plate_number"`
	VIN               string     `json:"vin"`
	VehicleModel      string     `json:"model"`
	KM                string     `json:"km"`
	CustomerName      string     `json:"customer_name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	CustomerComplaint string     `json:"customer_complaint"`
	NotesGeneral      string     `json:"notes_general"`
}

type BackupLineRow struct {
	ID               uint            `json:"id"`
	VisitID          uint            `json:"visit_id"`
	Category         string          `json:"category"`
	ItemName         string          `json:"item_name"`
	Result           string          `json:"result"`
	Notes            string          `json:"notes"`
	PartsCode        string          `json:"parts_code"`
	PartsQty         int             `json:"parts_qty"`
	ExcludeFromPrint bool            `json:"exclude_from_print"`
	PartsCost        decimal.Decimal `json:"parts_cost"`
	LaborCost        decimal.Decimal `json:"labor_cost"`
}
