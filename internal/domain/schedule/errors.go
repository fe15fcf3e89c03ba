package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleConflict = errors.New("employee already has a schedule that overlaps with this time period")
	ErrInvalidInterval  = errors.New("shift end must be after shift start")
)
