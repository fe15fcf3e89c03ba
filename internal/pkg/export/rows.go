// Package export renders assembled reports into downloadable documents.
// All three formats share one tabular layout so a CSV opened next to the
// Excel version lines up column for column.
package export

import (
	"fmt"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
)

var individualHeaders = []string{"Date", "Clock In", "Clock Out", "Regular Hours", "Overtime Hours", "Description", "Notes"}

var overtimeHeaders = []string{"Employee", "Week", "Overtime Hours", "Overtime Cost"}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1f", h)
}

func formatMoney(m float64) string {
	return fmt.Sprintf("%.2f", m)
}

func individualRows(rep report.IndividualReport) [][]string {
	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, []string{
			r.Date,
			r.ClockIn,
			r.ClockOut,
			formatHours(r.RegularHours),
			formatHours(r.OvertimeHours),
			r.Description,
			r.Notes,
		})
	}
	return rows
}

func overtimeRows(rep report.OvertimeReport) [][]string {
	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, []string{
			r.EmployeeName,
			r.WeekLabel,
			formatHours(r.OvertimeHours),
			formatMoney(r.OvertimeCost),
		})
	}
	return rows
}

func summaryRows(s report.Summary) [][]string {
	return [][]string{
		{"Days Worked", fmt.Sprintf("%d", s.DaysWorked)},
		{"Regular Hours", formatHours(s.RegularHours)},
		{"Overtime Hours", formatHours(s.OvertimeHours)},
		{"Total Hours", formatHours(s.TotalHours)},
	}
}
