package timeentry

import "context"

// TimeEntryService defines business logic for time tracking.
type TimeEntryService interface {
	// ClockIn opens a new entry for the user. Fails with
	// ErrAlreadyClockedIn when an open entry exists.
	ClockIn(ctx context.Context, userID string) (EntryResponse, error)

	// ClockOut closes the user's open entry.
	ClockOut(ctx context.Context, userID string, req ClockOutRequest) (EntryResponse, error)

	// LunchStart stamps lunch_clock_in on the open entry.
	LunchStart(ctx context.Context, userID string) (EntryResponse, error)

	// LunchEnd stamps lunch_clock_out on the open entry.
	LunchEnd(ctx context.Context, userID string) (EntryResponse, error)

	// CreateEntry records a complete entry on behalf of an employee (manager).
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)

	GetEntry(ctx context.Context, id string) (EntryResponse, error)

	// ListEntries returns one user's entries with filters and pagination.
	ListEntries(ctx context.Context, userID string, filter ListFilter) (ListEntriesResponse, error)

	// Weekly returns exactly 7 day buckets starting at week_start.
	Weekly(ctx context.Context, userID string, req WeeklyRequest) (WeeklyResponse, error)

	// UpdateEntry fixes a recorded entry and marks it edited (manager).
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)

	ApproveEntry(ctx context.Context, id string) (EntryResponse, error)

	RejectEntry(ctx context.Context, id string) (EntryResponse, error)

	DeleteEntry(ctx context.Context, id string) error
}
