package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time entries.
type TimeEntryRepository interface {
	// Create inserts a new entry. The open-entry invariant is enforced by a
	// partial unique index; violations surface as ErrAlreadyClockedIn.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetOpenEntry returns the user's entry with clock_out IS NULL, or
	// ErrEntryNotFound when the user is not clocked in.
	GetOpenEntry(ctx context.Context, userID string) (TimeEntry, error)

	// ListByUser retrieves entries for a user, newest clock-in first.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]TimeEntry, int64, error)

	// GetByUserAndDateRange returns entries whose clock-in falls inside
	// [start, end], ascending by clock-in.
	GetByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]TimeEntry, error)

	// GetByEmployeeAndDateRange is the reporting variant keyed by the
	// sequential employee id.
	GetByEmployeeAndDateRange(ctx context.Context, employeeID int, start, end time.Time) ([]TimeEntry, error)

	// GetByDateRange returns every user's entries in [start, end], used by
	// company-wide reports.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error

	Delete(ctx context.Context, id string) error
}
