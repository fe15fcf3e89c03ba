package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
)

func writeSheet(title string, headers []string, rows [][]string, summary *report.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, title); err != nil {
		return nil, err
	}
	sheet = title

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDD9C4"}},
	})
	if err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	rowIdx := 2
	for _, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
		rowIdx++
	}

	if summary != nil {
		rowIdx++ // blank separator row
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), "Summary"); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIdx), fmt.Sprintf("A%d", rowIdx), headerStyle); err != nil {
			return nil, err
		}
		rowIdx++
		for _, row := range summaryRows(*summary) {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIdx), row[0]); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", rowIdx), row[1]); err != nil {
				return nil, err
			}
			rowIdx++
		}
	}

	if err := f.SetColWidth(sheet, "A", string(rune('A'+len(headers)-1)), 18); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExcelIndividual renders an individual hours report as an xlsx workbook.
func ExcelIndividual(rep report.IndividualReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writeSheet("Time Report", individualHeaders, individualRows(rep), summary)
}

// ExcelOvertime renders the overtime report as an xlsx workbook.
func ExcelOvertime(rep report.OvertimeReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writeSheet("Overtime Report", overtimeHeaders, overtimeRows(rep), summary)
}
