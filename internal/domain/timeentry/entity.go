package timeentry

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusEdited   Status = "edited"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusEdited),
}

// TimeEntry is one recorded work interval. ClockOut stays nil while the
// entry is open; at most one open entry exists per user.
type TimeEntry struct {
	ID                   string
	UserID               string
	EmployeeID           int
	ClockIn              time.Time
	ClockOut             *time.Time
	LunchClockIn         *time.Time
	LunchClockOut        *time.Time
	BreakDurationMinutes *int
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Join
	EmployeeName *string
}

// IsOpen reports whether the entry has no clock-out yet.
func (e *TimeEntry) IsOpen() bool {
	return e.ClockOut == nil
}

// WorkDuration returns (clockOut - clockIn) - lunch - break, and false while
// the entry is open. Negative results are returned as-is; callers treat them
// as a data-quality signal.
func (e *TimeEntry) WorkDuration() (time.Duration, bool) {
	if e.ClockOut == nil {
		return 0, false
	}
	total := e.ClockOut.Sub(e.ClockIn)
	if e.LunchClockIn != nil && e.LunchClockOut != nil {
		total -= e.LunchClockOut.Sub(*e.LunchClockIn)
	}
	if e.BreakDurationMinutes != nil {
		total -= time.Duration(*e.BreakDurationMinutes) * time.Minute
	}
	return total, true
}
