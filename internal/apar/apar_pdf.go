package apar

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type aparDocument struct {
	EmployeeName string
	Department   string
	Apar         AparResponse
	GeneratedAt  time.Time
}

func renderAparPDF(doc aparDocument) ([]byte, error) {
	a := doc.Apar

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("APAR %d", a.Year), true)
	pdf.SetCreator("go-pms", true)
	pdf.SetCreationDate(doc.GeneratedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Annual Performance Appraisal Report %d", a.Year))
	pdf.Ln(14)

	row := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, tr(value), "", "L", false)
	}
	section := func(title string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
	}

	row("Employee", doc.EmployeeName)
	row("Department", doc.Department)
	row("Employee ID", a.EmployeeID)
	row("Period", a.Period)
	row("Status", a.Status)

	section("Self appraisal")
	row("Achievements", a.SelfAppraisal.Achievements)
	row("Challenges", a.SelfAppraisal.Challenges)
	row("Innovations", a.SelfAppraisal.Innovations)

	section("Review")
	row("Reviewer comments", a.ReviewerComments)
	row("Reviewer score", fmt.Sprintf("%.2f", a.ReviewerScore))
	row("Final score", fmt.Sprintf("%.2f", a.FinalScore))
	row("Performance level", PerformanceLevel(a.FinalScore))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated "+doc.GeneratedAt.Format(time.RFC1123))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render apar pdf: %w", err)
	}
	return buf.Bytes(), nil
}
