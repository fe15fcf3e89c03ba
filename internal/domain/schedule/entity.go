package schedule

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusPublished),
	string(StatusCancelled),
	string(StatusCompleted),
}

// Schedule is a shift assigned to an employee by a manager. Intervals are
// half-open: a shift ending exactly when another starts does not overlap it.
type Schedule struct {
	ID                   string
	UserID               string
	ShiftStart           time.Time
	ShiftEnd             time.Time
	Status               Status
	BreakDurationMinutes *int
	Location             string
	Notes                *string
	CreatedByID          string
	CreatedAt            time.Time
	ModifiedAt           *time.Time

	// Joins
	EmployeeName  *string
	CreatedByName *string
}

// ScheduledHours returns (shiftEnd - shiftStart) minus break, in hours.
func (s *Schedule) ScheduledHours() float64 {
	hours := s.ShiftEnd.Sub(s.ShiftStart).Hours()
	if s.BreakDurationMinutes != nil {
		hours -= float64(*s.BreakDurationMinutes) / 60
	}
	return hours
}

// OccupiesDay reports whether the shift touches the given calendar day,
// inclusive of both the start and end date. A shift spanning midnight shows
// up on both days.
func (s *Schedule) OccupiesDay(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	start := s.ShiftStart.Truncate(24 * time.Hour)
	end := s.ShiftEnd.Truncate(24 * time.Hour)
	return !d.Before(start) && !d.After(end)
}
