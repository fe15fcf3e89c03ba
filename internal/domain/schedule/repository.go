package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access methods for shifts.
type ScheduleRepository interface {
	// Create persists a shift. The store enforces the no-overlap rule even
	// when callers raced past HasOverlapping, returning ErrScheduleConflict.
	Create(ctx context.Context, s Schedule) (Schedule, error)

	GetByID(ctx context.Context, id string) (Schedule, error)

	// ListByUser returns a user's shifts, newest shift start first.
	ListByUser(ctx context.Context, userID string) ([]Schedule, error)

	// GetByUserAndDateRange returns shifts intersecting [start, end],
	// ascending by shift start.
	GetByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]Schedule, error)

	// GetByUsersAndDateRange is the team variant, ordered by shift start
	// then user.
	GetByUsersAndDateRange(ctx context.Context, userIDs []string, start, end time.Time) ([]Schedule, error)

	// Search filters by employee, date range and status, newest first.
	Search(ctx context.Context, filter SearchFilter) ([]Schedule, error)

	// HasOverlapping reports whether any shift for userID intersects the
	// half-open interval [shiftStart, shiftEnd), excluding excludeID when
	// non-nil. Two intervals overlap iff s1 < e2 AND s2 < e1.
	HasOverlapping(ctx context.Context, userID string, shiftStart, shiftEnd time.Time, excludeID *string) (bool, error)

	Update(ctx context.Context, s Schedule) error

	Delete(ctx context.Context, id string) error
}
