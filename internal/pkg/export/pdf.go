package export

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
)

func writePDF(title string, subtitle string, headers []string, rows [][]string, summary *report.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(221, 217, 196)
	for _, header := range headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if summary != nil {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range summaryRows(*summary) {
			pdf.CellFormat(45, 6, row[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PDFIndividual renders an individual hours report as a PDF document.
func PDFIndividual(rep report.IndividualReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writePDF("Time Report", rep.EmployeeName, individualHeaders, individualRows(rep), summary)
}

// PDFOvertime renders the overtime report as a PDF document.
func PDFOvertime(rep report.OvertimeReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writePDF("Overtime Report", "", overtimeHeaders, overtimeRows(rep), summary)
}
