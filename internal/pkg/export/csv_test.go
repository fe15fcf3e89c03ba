package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
)

func sampleIndividual() report.IndividualReport {
	return report.IndividualReport{
		EmployeeID:   1001,
		EmployeeName: "Ada Lovelace",
		Summary: report.Summary{
			DaysWorked:    2,
			RegularHours:  15.5,
			OvertimeHours: 1.5,
			TotalHours:    17.0,
		},
		Rows: []report.IndividualReportRow{
			{Date: "2026-03-02", ClockIn: "09:00", ClockOut: "18:30", RegularHours: 8.0, OvertimeHours: 1.5, Description: "Daily Summary", Notes: ""},
			{Date: "2026-03-03", ClockIn: "09:00", ClockOut: "16:30", RegularHours: 7.5, OvertimeHours: 0, Description: "Daily Summary", Notes: ""},
		},
	}
}

func sampleOvertime() report.OvertimeReport {
	return report.OvertimeReport{
		Summary: report.Summary{
			DaysWorked:    5,
			RegularHours:  40.0,
			OvertimeHours: 3.0,
			TotalHours:    43.0,
		},
		Rows: []report.OvertimeReportRow{
			{EmployeeName: "Ada Lovelace", WeekLabel: "Week 10", OvertimeHours: 3.0, OvertimeCost: 90.0},
		},
	}
}

func TestCSVIndividual(t *testing.T) {
	content, err := CSVIndividual(sampleIndividual(), true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "Date,Clock In,Clock Out,Regular Hours,Overtime Hours,Description,Notes", lines[0])
	assert.Equal(t, "2026-03-02,09:00,18:30,8.0,1.5,Daily Summary,", lines[1])
	assert.Equal(t, "2026-03-03,09:00,16:30,7.5,0.0,Daily Summary,", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "Summary", lines[4])
	assert.Equal(t, "Days Worked,2", lines[5])
	assert.Equal(t, "Regular Hours,15.5", lines[6])
	assert.Equal(t, "Overtime Hours,1.5", lines[7])
	assert.Equal(t, "Total Hours,17.0", lines[8])
}

func TestCSVIndividualWithoutSummary(t *testing.T) {
	content, err := CSVIndividual(sampleIndividual(), false)
	require.NoError(t, err)

	assert.NotContains(t, string(content), "Summary")
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestCSVOvertime(t *testing.T) {
	content, err := CSVOvertime(sampleOvertime(), true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Equal(t, "Employee,Week,Overtime Hours,Overtime Cost", lines[0])
	assert.Equal(t, "Ada Lovelace,Week 10,3.0,90.00", lines[1])
}

func TestExcelIndividualProducesWorkbook(t *testing.T) {
	content, err := ExcelIndividual(sampleIndividual(), true)
	require.NoError(t, err)

	// xlsx files are zip archives
	require.GreaterOrEqual(t, len(content), 4)
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, content[:4])
}

func TestPDFOvertimeProducesDocument(t *testing.T) {
	content, err := PDFOvertime(sampleOvertime(), true)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(content), 5)
	assert.Equal(t, "%PDF-", string(content[:5]))
}
