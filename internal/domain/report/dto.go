package report

import (
	"fmt"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
)

type IndividualReportRequest struct {
	EmployeeID     int    `json:"employee_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	IncludeDetails bool   `json:"include_details"`
}

func (r *IndividualReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed report period. Call only after Validate.
func (r *IndividualReportRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end.Add(24*time.Hour - time.Second)
}

type OvertimeReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *OvertimeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *OvertimeReportRequest) Range() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end.Add(24*time.Hour - time.Second)
}

// IndividualReportRow is one line of an individual report: either a single
// time entry (details mode) or a whole day (summary mode).
type IndividualReportRow struct {
	Date          string  `json:"date"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      string  `json:"clock_out"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Description   string  `json:"description"`
	Notes         string  `json:"notes"`
}

// OvertimeReportRow is one employee-week with overtime.
type OvertimeReportRow struct {
	EmployeeName  string  `json:"employee_name"`
	WeekLabel     string  `json:"week_label"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimeCost  float64 `json:"overtime_cost"`
}

// ChartData holds parallel arrays of equal length indexed by period label.
type ChartData struct {
	Labels        []string  `json:"labels"`
	RegularHours  []float64 `json:"regular_hours"`
	OvertimeHours []float64 `json:"overtime_hours"`
}

type Summary struct {
	DaysWorked    int     `json:"days_worked"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	TotalHours    float64 `json:"total_hours"`
}

type IndividualReport struct {
	EmployeeID   int                   `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	Summary      Summary               `json:"summary"`
	Chart        ChartData             `json:"chart"`
	Rows         []IndividualReportRow `json:"rows"`
}

type OvertimeReport struct {
	Summary Summary             `json:"summary"`
	Chart   ChartData           `json:"chart"`
	Rows    []OvertimeReportRow `json:"rows"`
}

type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
)

type ExportRequest struct {
	ReportType     string `json:"report_type"` // individual, overtime
	Format         string `json:"format"`      // excel, csv, pdf
	EmployeeID     int    `json:"employee_id"` // individual only
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	IncludeDetails bool   `json:"include_details"`
	IncludeSummary bool   `json:"include_summary"`
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ReportType, []string{"individual", "overtime"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "report_type",
			Message: "report_type must be one of: individual, overtime",
		})
	}
	if !validator.IsInSlice(r.Format, []string{string(FormatExcel), string(FormatCSV), string(FormatPDF)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("format must be one of: %s, %s, %s", FormatExcel, FormatCSV, FormatPDF),
		})
	}
	if r.ReportType == "individual" && r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required for individual reports",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportResult is the rendered document plus the HTTP metadata to serve it.
type ExportResult struct {
	Content     []byte `json:"-"`
	ContentType string `json:"-"`
	Filename    string `json:"-"`
}
