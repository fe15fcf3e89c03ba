package schedule

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	UserID               string  `json:"user_id"`
	ShiftStart           string  `json:"shift_start"`
	ShiftEnd             string  `json:"shift_end"`
	Location             string  `json:"location"`
	Notes                *string `json:"notes"`
	BreakDurationMinutes *int    `json:"break_duration_minutes"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	start, okStart := validator.IsValidDateTime(r.ShiftStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be an ISO8601 timestamp",
		})
	}
	end, okEnd := validator.IsValidDateTime(r.ShiftEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be an ISO8601 timestamp",
		})
	}
	if okStart && okEnd && !validator.IsValidInterval(start, end) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be after shift_start",
		})
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

// Interval returns the parsed shift interval. Call only after Validate.
func (r *CreateScheduleRequest) Interval() (time.Time, time.Time) {
	start, _ := validator.IsValidDateTime(r.ShiftStart)
	end, _ := validator.IsValidDateTime(r.ShiftEnd)
	return start, end
}

// BulkCreateRequest creates many shifts in one call. Conflicting shifts are
// skipped per-item and reported, never failing the whole batch.
type BulkCreateRequest struct {
	Shifts []CreateScheduleRequest `json:"shifts"`
}

func (r *BulkCreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Shifts) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shifts",
			Message: "shifts is required",
		})
	}
	for i, shift := range r.Shifts {
		if err := shift.Validate(); err != nil {
			var shiftErrs validator.ValidationErrors
			if errors.As(err, &shiftErrs) {
				for _, e := range shiftErrs {
					errs = append(errs, validator.ValidationError{
						Field:   "shifts[" + strconv.Itoa(i) + "]." + e.Field,
						Message: e.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SkippedShift struct {
	Index      int    `json:"index"`
	UserID     string `json:"user_id"`
	ShiftStart string `json:"shift_start"`
	ShiftEnd   string `json:"shift_end"`
	Reason     string `json:"reason"`
}

type BulkCreateResponse struct {
	Created []ScheduleResponse `json:"created"`
	Skipped []SkippedShift     `json:"skipped"`
}

type UpdateScheduleRequest struct {
	ID                   string  `json:"-"`
	ShiftStart           *string `json:"shift_start"`
	ShiftEnd             *string `json:"shift_end"`
	Status               *string `json:"status"`
	Location             *string `json:"location"`
	Notes                *string `json:"notes"`
	BreakDurationMinutes *int    `json:"break_duration_minutes"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftStart != nil {
		if _, ok := validator.IsValidDateTime(*r.ShiftStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift_start must be an ISO8601 timestamp",
			})
		}
	}
	if r.ShiftEnd != nil {
		if _, ok := validator.IsValidDateTime(*r.ShiftEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be an ISO8601 timestamp",
			})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
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

type SearchFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (f *SearchFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckConflictsRequest struct {
	UserID     string  `json:"user_id"`
	ShiftStart string  `json:"shift_start"`
	ShiftEnd   string  `json:"shift_end"`
	ExcludeID  *string `json:"exclude_id,omitempty"`
}

func (r *CheckConflictsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	start, okStart := validator.IsValidDateTime(r.ShiftStart)
	end, okEnd := validator.IsValidDateTime(r.ShiftEnd)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be an ISO8601 timestamp",
		})
	}
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be an ISO8601 timestamp",
		})
	}
	if okStart && okEnd && !validator.IsValidInterval(start, end) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be after shift_start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConflictResponse struct {
	HasConflict bool `json:"has_conflict"`
}

type ScheduleResponse struct {
	ID                   string  `json:"id"`
	UserID               string  `json:"user_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	ShiftStart           string  `json:"shift_start"`
	ShiftEnd             string  `json:"shift_end"`
	Status               string  `json:"status"`
	Location             string  `json:"location"`
	Notes                *string `json:"notes"`
	BreakDurationMinutes *int    `json:"break_duration_minutes"`
	TotalHours           float64 `json:"total_hours"`
	CreatedByID          string  `json:"created_by_id"`
	CreatedByName        *string `json:"created_by_name,omitempty"`
	CreatedAt            string  `json:"created_at"`
	ModifiedAt           *string `json:"modified_at"`
}

type WeeklyDay struct {
	Date        string             `json:"date"`
	DayOfWeek   string             `json:"day_of_week"`
	Schedules   []ScheduleResponse `json:"schedules"`
	HasSchedule bool               `json:"has_schedule"`
}

type WeeklyResponse struct {
	WeekStart    string      `json:"week_start"`
	WeekEnd      string      `json:"week_end"`
	EmployeeName string      `json:"employee_name"`
	TotalHours   float64     `json:"total_hours"`
	Days         []WeeklyDay `json:"days"`
}

type TeamWeeklyMember struct {
	UserID       string      `json:"user_id"`
	EmployeeName string      `json:"employee_name"`
	TotalHours   float64     `json:"total_hours"`
	Days         []WeeklyDay `json:"days"`
}

type TeamWeeklyResponse struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Members   []TeamWeeklyMember `json:"members"`
}
