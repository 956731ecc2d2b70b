package Selection

import (
	"strings"

	"Garage/Models"
)

// ModelKey normalizes a vehicle model string for part-memory lookups.
// An empty key means no memory is read or written for the visit.
func ModelKey(model string) string {
	return strings.ToLower(strings.TrimSpace(model))
}

// FillFromMemory pre-fills blank part codes from the remembered values for
// the vehicle model. A code the operator already entered is never
// overwritten, only blanks are filled.
func FillFromMemory(lines []Models.VisitChecklistLine, mem map[[2]string]string) []Models.VisitChecklistLine {
	if len(mem) == 0 {
		return lines
	}
	out := make([]Models.VisitChecklistLine, len(lines))
	copy(out, lines)
	for i := range out {
		if strings.TrimSpace(out[i].PartsCode) != "" {
			continue
		}
		if code, ok := mem[[2]string{out[i].Category, out[i].ItemName}]; ok {
			out[i].PartsCode = code
		}
	}
	return out
}
