package Pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Garage/Models"
)

func TestTruncateRespectsRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than limit", "Φρένα", 45, "Φρένα"},
		{"exactly at limit", "Λάδια", 5, "Λάδια"},
		{"greek cut on rune boundary", "Στοπερ μπροστά", 8, "Στοπερ μ"},
		{"ascii", "brake pads front", 5, "brake"},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestBuildJobCardLongGreekText(t *testing.T) {
	company := Models.Company{Name: "O&S STEPHANOU LTD"}
	visit := Models.Visit{
		PlateNumber:       "KXY 123",
		CustomerComplaint: strings.Repeat("Θόρυβος στα φρένα. ", 80),
		TotalAmount:       decimal.NewFromInt(35),
	}
	lines := []Models.VisitChecklistLine{
		{Category: "Φρένα", ItemName: strings.Repeat("Στοπερ μπροστά ", 5), Result: "REPAIR"},
	}

	out, err := BuildJobCard(company, visit, lines)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}
