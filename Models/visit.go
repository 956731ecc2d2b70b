package Models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Visit struct {
	gorm.Model
	JobNo        string     `json:"job_no" gorm:"size:50;index"`
	DateIn       *time.Time `json:"date_in" gorm:"index"`
	DateOut      *time.Time `json:"date_out"`
	PlateNumber  string     `json:"plate_number" gorm:"size:50;index"`
	VIN          string     `json:"vin" gorm:"size:50;index"`
	VehicleModel string     `json:"model" gorm:"size:255;column:model"`
	KM           string     `json:"km" gorm:"size:50"`

	CustomerName      string `json:"customer_name" gorm:"size:255;index"`
	Phone             string `json:"phone" gorm:"size:50"`
	Email             string `json:"email" gorm:"size:255"`
	CustomerComplaint string `json:"customer_complaint" gorm:"type:text"`
	NotesGeneral      string `json:"notes_general" gorm:"type:text"`

	TotalParts  decimal.Decimal `json:"total_parts" gorm:"type:decimal(10,2);default:0"`
	TotalLabor  decimal.Decimal `json:"total_labor" gorm:"type:decimal(10,2);default:0"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);default:0"`

	Lines []VisitChecklistLine `json:"lines,omitempty" gorm:"foreignKey:VisitID;constraint:OnDelete:CASCADE"`
}

// VisitChecklistLine is one inspection row on a visit. Category and item
// name are copied from the catalog when the visit is created; the line is a
// snapshot, not a live reference, so later catalog edits leave it untouched.
type VisitChecklistLine struct {
	gorm.Model
	VisitID uint `json:"visit_id" gorm:"not null;index"`

	Category string `json:"category" gorm:"size:255;index"`
	ItemName string `json:"item_name" gorm:"size:255"`

	Result           string `json:"result" gorm:"size:10;default:OK"`
	Notes            string `json:"notes" gorm:"type:text"`
	PartsCode        string `json:"parts_code" gorm:"size:100"`
	PartsQty         int    `json:"parts_qty" gorm:"not null;default:0"`
	ExcludeFromPrint bool   `json:"exclude_from_print" gorm:"not null;default:false"`

	PartsCost decimal.Decimal `json:"parts_cost" gorm:"type:decimal(10,2);default:0"`
	LaborCost decimal.Decimal `json:"labor_cost" gorm:"type:decimal(10,2);default:0"`
	LineTotal decimal.Decimal `json:"line_total" gorm:"type:decimal(10,2);default:0"`
}

// SaveVisitRequest carries one save-all submission. Visit fields are
// pointers so an absent key leaves the stored value untouched while a
// submitted empty string is written verbatim.
type SaveVisitRequest struct {
	JobNo             *string `json:"job_no"`
	DateIn            *string `json:"date_in"`
	TimeIn            *string `json:"time_in"`
	DateOut           *string `json:"date_out"`
	TimeOut           *string `json:"time_out"`
	PlateNumber       *string `json:"plate_number"`
	VIN               *string `json:"vin"`
	VehicleModel      *string `json:"model"`
	KM                *string `json:"km"`
	CustomerName      *string `json:"customer_name"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email"`
	CustomerComplaint *string `json:"customer_complaint"`
	NotesGeneral      *string `json:"notes_general"`

	Lines []SaveLineRequest `json:"lines"`

	// Optional new row appended after the existing lines are updated.
	NewCategory   string `json:"new_category"`
	NewItem       string `json:"new_item"`
	MakePermanent bool   `json:"make_permanent"`
}

// SaveLineRequest carries raw form values for one line. Result and
// quantity arrive as strings and are coerced, never rejected.
type SaveLineRequest struct {
	ID               uint   `json:"id"`
	Result           string `json:"result"`
	Notes            string `json:"notes"`
	PartsCode        string `json:"parts_code"`
	PartsQty         string `json:"parts_qty"`
	PartsCost        string `json:"parts_cost"`
	LaborCost        string `json:"labor_cost"`
	ExcludeFromPrint bool   `json:"exclude_from_print"`
}

type AddLineRequest struct {
	Category      string `json:"category" validate:"required"`
	ItemName      string `json:"item_name" validate:"required"`
	MakePermanent bool   `json:"make_permanent"`
}
