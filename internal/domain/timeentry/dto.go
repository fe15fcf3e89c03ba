package timeentry

import (
	"strings"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
)

type ClockOutRequest struct {
	BreakDurationMinutes *int `json:"break_duration_minutes"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateEntryRequest is the manager-side manual entry form.
type CreateEntryRequest struct {
	UserID               string  `json:"user_id"`
	ClockIn              string  `json:"clock_in"`
	ClockOut             *string `json:"clock_out"`
	LunchClockIn         *string `json:"lunch_clock_in"`
	LunchClockOut        *string `json:"lunch_clock_out"`
	BreakDurationMinutes *int    `json:"break_duration_minutes"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	clockIn, ok := validator.IsValidDateTime(r.ClockIn)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be an ISO8601 timestamp",
		})
	}
	if r.ClockOut != nil {
		clockOut, ok := validator.IsValidDateTime(*r.ClockOut)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		} else if clockOut.Before(clockIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must not be before clock_in",
			})
		}
	}
	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	ID                   string  `json:"-"`
	ClockIn              *string `json:"clock_in"`
	ClockOut             *string `json:"clock_out"`
	LunchClockIn         *string `json:"lunch_clock_in"`
	LunchClockOut        *string `json:"lunch_clock_out"`
	BreakDurationMinutes *int    `json:"break_duration_minutes"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"clock_in":        r.ClockIn,
		"clock_out":       r.ClockOut,
		"lunch_clock_in":  r.LunchClockIn,
		"lunch_clock_out": r.LunchClockOut,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be an ISO8601 timestamp",
			})
		}
	}
	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Limit < 0 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	EmployeeID           int      `json:"employee_id"`
	EmployeeName         *string  `json:"employee_name,omitempty"`
	ClockIn              string   `json:"clock_in"`
	ClockOut             *string  `json:"clock_out"`
	LunchClockIn         *string  `json:"lunch_clock_in"`
	LunchClockOut        *string  `json:"lunch_clock_out"`
	BreakDurationMinutes *int     `json:"break_duration_minutes"`
	Status               string   `json:"status"`
	TotalHours           *float64 `json:"total_hours"`
}

type ListEntriesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Entries    []EntryResponse `json:"entries"`
}

// WeeklyRequest selects the 7-day window starting at WeekStart.
type WeeklyRequest struct {
	WeekStart string  `json:"week_start"`
	UserID    *string `json:"user_id,omitempty"`
}

func (r *WeeklyRequest) Validate() (time.Time, error) {
	var errs validator.ValidationErrors

	weekStart, ok := validator.IsValidDate(r.WeekStart)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}
	return weekStart, nil
}

type WeeklyDay struct {
	Date       string          `json:"date"`
	DayOfWeek  string          `json:"day_of_week"`
	Entries    []EntryResponse `json:"entries"`
	TotalHours float64         `json:"total_hours"`
}

type WeeklyResponse struct {
	WeekStart    string      `json:"week_start"`
	WeekEnd      string      `json:"week_end"`
	EmployeeName string      `json:"employee_name"`
	TotalHours   float64     `json:"total_hours"`
	Days         []WeeklyDay `json:"days"`
}
