package Selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Garage/Models"
)

func TestIsSelected(t *testing.T) {
	tests := []struct {
		name string
		line Models.VisitChecklistLine
		want bool
	}{
		{
			name: "untouched OK line is not selected",
			line: Models.VisitChecklistLine{Result: "OK"},
			want: false,
		},
		{
			name: "CHECK result is selected",
			line: Models.VisitChecklistLine{Result: "CHECK"},
			want: true,
		},
		{
			name: "REPAIR result is selected",
			line: Models.VisitChecklistLine{Result: "REPAIR"},
			want: true,
		},
		{
			name: "lowercase repair still counts",
			line: Models.VisitChecklistLine{Result: " repair "},
			want: true,
		},
		{
			name: "OK with quantity is selected",
			line: Models.VisitChecklistLine{Result: "OK", PartsQty: 2},
			want: true,
		},
		{
			name: "OK with part code is selected",
			line: Models.VisitChecklistLine{Result: "OK", PartsCode: "BP-100"},
			want: true,
		},
		{
			name: "whitespace-only part code is not selected",
			line: Models.VisitChecklistLine{Result: "OK", PartsCode: "   "},
			want: false,
		},
		{
			name: "OK with notes is selected",
			line: Models.VisitChecklistLine{Result: "OK", Notes: "squeaky"},
			want: true,
		},
		{
			name: "whitespace-only notes are not selected",
			line: Models.VisitChecklistLine{Result: "OK", Notes: "  \t"},
			want: false,
		},
		{
			name: "exclude flag wins over CHECK",
			line: Models.VisitChecklistLine{Result: "CHECK", ExcludeFromPrint: true},
			want: false,
		},
		{
			name: "exclude flag wins over every inclusion condition",
			line: Models.VisitChecklistLine{
				Result:           "REPAIR",
				Notes:            "worn",
				PartsCode:        "BP-100",
				PartsQty:         4,
				ExcludeFromPrint: true,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSelected(tt.line))
		})
	}
}

func TestSelectedLinesPreservesOrder(t *testing.T) {
	lines := []Models.VisitChecklistLine{
		{ItemName: "a", Result: "CHECK"},
		{ItemName: "b", Result: "OK"},
		{ItemName: "c", Result: "REPAIR"},
		{ItemName: "d", Result: "OK", PartsQty: 1},
	}

	selected := SelectedLines(lines)

	assert.Len(t, selected, 3)
	assert.Equal(t, "a", selected[0].ItemName)
	assert.Equal(t, "c", selected[1].ItemName)
	assert.Equal(t, "d", selected[2].ItemName)
}

func TestDocumentLinesFallsBackToAll(t *testing.T) {
	lines := []Models.VisitChecklistLine{
		{ItemName: "a", Result: "OK"},
		{ItemName: "b", Result: "OK"},
	}

	doc := DocumentLines(lines)
	assert.Len(t, doc, 2, "an all-OK visit should still print the full checklist")

	lines[0].Result = "CHECK"
	doc = DocumentLines(lines)
	assert.Len(t, doc, 1)
	assert.Equal(t, "a", doc[0].ItemName)
}
