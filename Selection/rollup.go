package Selection

import (
	"github.com/shopspring/decimal"

	"Garage/Models"
)

// Totals is the visit-level cost rollup.
type Totals struct {
	Parts  decimal.Decimal
	Labor  decimal.Decimal
	Amount decimal.Decimal
}

// LineTotal is the cost of one line: parts plus labor.
func LineTotal(line Models.VisitChecklistLine) decimal.Decimal {
	return line.PartsCost.Add(line.LaborCost)
}

// Rollup sums costs across every line of a visit, selected or not.
// Print selection only affects what appears on the document; the money
// totals always cover the whole visit.
func Rollup(lines []Models.VisitChecklistLine) Totals {
	t := Totals{
		Parts:  decimal.Zero,
		Labor:  decimal.Zero,
		Amount: decimal.Zero,
	}
	for _, line := range lines {
		t.Parts = t.Parts.Add(line.PartsCost)
		t.Labor = t.Labor.Add(line.LaborCost)
		t.Amount = t.Amount.Add(LineTotal(line))
	}
	return t
}
