package Pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"Garage/Models"
	"Garage/Selection"
)

// BuildJobCard renders one visit as an A4 job-card PDF: company header,
// visit/customer block, the given line rows and the visit totals. The
// caller decides which lines to pass (normally Selection.DocumentLines).
func BuildJobCard(company Models.Company, visit Models.Visit, lines []Models.VisitChecklistLine) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("greek")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	_, pageHeight := pdf.GetPageSize()
	y := 18.0

	// Header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(18, y, tr(company.Name))
	y += 6
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range company.Lines() {
		pdf.Text(18, y, tr(line))
		y += 5
	}
	pdf.Text(18, y, tr(fmt.Sprintf("Tel: %s   Fax: %s", company.Tel, company.Fax)))
	y += 5
	pdf.Text(18, y, tr(fmt.Sprintf("Email: %s", company.Email)))
	y += 5
	pdf.Text(18, y, tr(fmt.Sprintf("VAT: %s   Tax ID: %s", company.VATNumber, company.TaxID)))

	y += 10
	pdf.SetFont("Helvetica", "B", 11)
	jobNo := visit.JobNo
	if jobNo == "" {
		jobNo = fmt.Sprintf("%d", visit.ID)
	}
	pdf.Text(18, y, tr(fmt.Sprintf("JOB CARD: %s", jobNo)))
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(18, y, tr(fmt.Sprintf("Ημ/νία: %s", formatDate(visit.DateIn))))
	y += 5
	pdf.Text(18, y, tr(fmt.Sprintf("Αρ. Εγγραφής: %s    VIN: %s", visit.PlateNumber, visit.VIN)))
	y += 5
	pdf.Text(18, y, tr(fmt.Sprintf("Όνομα: %s    Τηλ: %s", visit.CustomerName, visit.Phone)))
	y += 5
	pdf.Text(18, y, tr(fmt.Sprintf("Email: %s    Μοντέλο: %s    KM: %s", visit.Email, visit.VehicleModel, visit.KM)))

	y += 7
	if visit.CustomerComplaint != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.Text(18, y, tr("Παράπονο/Αίτημα πελάτη:"))
		y += 5
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(18, y, tr(truncate(visit.CustomerComplaint, 1100)))
		y += 7
	}

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(18, y, tr("Σημείο"))
	pdf.Text(95, y, tr("Αποτέλεσμα"))
	pdf.Text(130, y, "Parts")
	pdf.Text(150, y, "Labor")
	pdf.Text(170, y, "Total")
	y += 4
	pdf.Line(18, y, 195, y)
	y += 6

	pdf.SetFont("Helvetica", "", 8)
	for _, ln := range lines {
		if y > pageHeight-20 {
			pdf.AddPage()
			y = 18
			pdf.SetFont("Helvetica", "", 8)
		}

		pdf.Text(18, y, tr(truncate(ln.ItemName, 45)))
		pdf.Text(95, y, tr(ln.Result))
		rightText(pdf, 145, y, ln.PartsCost.StringFixed(2))
		rightText(pdf, 165, y, ln.LaborCost.StringFixed(2))
		rightText(pdf, 195, y, Selection.LineTotal(ln).StringFixed(2))
		y += 5
	}

	y += 6
	pdf.SetFont("Helvetica", "B", 10)
	rightText(pdf, 195, y, tr(fmt.Sprintf("Σύνολο: %s €", visit.TotalAmount.StringFixed(2))))

	pdf.SetFont("Helvetica", "", 7)
	pdf.Text(18, pageHeight-10, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render job card pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate cuts s to at most max runes. Greek item names are multi-byte,
// so a byte slice could split a character in half.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func rightText(pdf *gofpdf.Fpdf, x, y float64, s string) {
	w := pdf.GetStringWidth(s)
	pdf.Text(x-w, y, s)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
