package export

import (
	"bytes"
	"encoding/csv"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
)

func writeCSV(headers []string, rows [][]string, summary *report.Summary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if summary != nil {
		if err := w.Write([]string{}); err != nil {
			return nil, err
		}
		if err := w.Write([]string{"Summary"}); err != nil {
			return nil, err
		}
		for _, row := range summaryRows(*summary) {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVIndividual renders an individual hours report as CSV.
func CSVIndividual(rep report.IndividualReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writeCSV(individualHeaders, individualRows(rep), summary)
}

// CSVOvertime renders the overtime report as CSV.
func CSVOvertime(rep report.OvertimeReport, includeSummary bool) ([]byte, error) {
	var summary *report.Summary
	if includeSummary {
		summary = &rep.Summary
	}
	return writeCSV(overtimeHeaders, overtimeRows(rep), summary)
}
