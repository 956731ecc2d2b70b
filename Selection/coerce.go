package Selection

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Inspection results a line can carry. Anything else submitted by a form
// is coerced back to OK rather than rejected.
const (
	ResultOK     = "OK"
	ResultCheck  = "CHECK"
	ResultRepair = "REPAIR"
)

// ParseResult normalizes a raw result value. It is total: garbled input
// comes back as OK so a save never fails on one bad field.
func ParseResult(raw string) string {
	res := strings.ToUpper(strings.TrimSpace(raw))
	switch res {
	case ResultOK, ResultCheck, ResultRepair:
		return res
	}
	return ResultOK
}

// ParseQty parses a part quantity. Unparsable or negative input comes
// back as 0, never an error.
func ParseQty(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseCost parses a money field. Unparsable or negative input comes back
// as zero.
func ParseCost(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
