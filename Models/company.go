package Models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Company holds the letterhead printed on job cards. A single row is kept;
// the app never behaves differently based on its contents.
type Company struct {
	gorm.Model
	Name         string         `json:"name" gorm:"size:255;not null"`
	AddressLines datatypes.JSON `json:"address_lines"`
	Tel          string         `json:"tel" gorm:"size:100"`
	Fax          string         `json:"fax" gorm:"size:100"`
	Email        string         `json:"email" gorm:"size:255"`
	VATNumber    string         `json:"vat_number" gorm:"size:100"`
	TaxID        string         `json:"tax_id" gorm:"size:100"`
}

type CompanyRequest struct {
	Name         string   `json:"name" validate:"required"`
	AddressLines []string `json:"address_lines"`
	Tel          string   `json:"tel"`
	Fax          string   `json:"fax"`
	Email        string   `json:"email"`
	VATNumber    string   `json:"vat_number"`
	TaxID        string   `json:"tax_id"`
}

// Lines decodes the stored address lines, tolerating an empty column.
func (c *Company) Lines() []string {
	var lines []string
	if len(c.AddressLines) == 0 {
		return lines
	}
	if err := json.Unmarshal(c.AddressLines, &lines); err != nil {
		return nil
	}
	return lines
}

// GetCompany returns the letterhead row, creating the default one on first
// use so PDF rendering always has a header.
func GetCompany(db *gorm.DB) (Company, error) {
	var company Company
	err := db.First(&company).Error
	if err == nil {
		return company, nil
	}
	if err != gorm.ErrRecordNotFound {
		return company, err
	}
	lines, _ := json.Marshal([]string{"Michael Paridi 3, Palouriotissa"})
	company = Company{
		Name:         "O&S STEPHANOU LTD",
		AddressLines: lines,
		Tel:          "22436990-22436992",
		Fax:          "22437001",
		Email:        "osstephanou@gmail.com",
		VATNumber:    "10079915R",
		TaxID:        "12079915T",
	}
	if err := db.Create(&company).Error; err != nil {
		return company, err
	}
	return company, nil
}
