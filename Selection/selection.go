package Selection

import (
	"strings"

	"Garage/Models"
)

// IsSelected decides whether a line belongs on a printed or emailed job
// card. A line with result OK and nothing else filled in means "inspected,
// nothing to report" and is left off. The exclude flag suppresses a line
// no matter what else it carries.
func IsSelected(line Models.VisitChecklistLine) bool {
	if line.ExcludeFromPrint {
		return false
	}
	res := strings.ToUpper(strings.TrimSpace(line.Result))
	if res == ResultCheck || res == ResultRepair {
		return true
	}
	if line.PartsQty > 0 {
		return true
	}
	if strings.TrimSpace(line.PartsCode) != "" {
		return true
	}
	if strings.TrimSpace(line.Notes) != "" {
		return true
	}
	return false
}

// SelectedLines filters to the printable subset, preserving order.
func SelectedLines(lines []Models.VisitChecklistLine) []Models.VisitChecklistLine {
	out := make([]Models.VisitChecklistLine, 0, len(lines))
	for _, line := range lines {
		if IsSelected(line) {
			out = append(out, line)
		}
	}
	return out
}

// DocumentLines returns the lines to render on a job-card document. When
// nothing passes selection the full line set is shown instead, so an
// untouched visit still prints a readable checklist rather than a blank
// table.
func DocumentLines(lines []Models.VisitChecklistLine) []Models.VisitChecklistLine {
	selected := SelectedLines(lines)
	if len(selected) == 0 {
		return lines
	}
	return selected
}
