package schedule

import (
	"context"
	"time"
)

// ScheduleService defines business logic for shift scheduling.
type ScheduleService interface {
	// CheckConflicts runs the overlap check without writing anything.
	CheckConflicts(ctx context.Context, req CheckConflictsRequest) (ConflictResponse, error)

	// CreateSchedule rejects the shift outright when it overlaps an
	// existing one for the same user.
	CreateSchedule(ctx context.Context, req CreateScheduleRequest, createdByID string) (ScheduleResponse, error)

	// BulkCreate creates shifts one by one, skipping conflicting items and
	// reporting them with their index and proposed interval.
	BulkCreate(ctx context.Context, req BulkCreateRequest, createdByID string) (BulkCreateResponse, error)

	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	ListUserSchedules(ctx context.Context, userID string) ([]ScheduleResponse, error)

	Search(ctx context.Context, filter SearchFilter) ([]ScheduleResponse, error)

	// Weekly returns exactly 7 day buckets; a shift spanning midnight
	// appears on both calendar days.
	Weekly(ctx context.Context, userID string, weekStart time.Time) (WeeklyResponse, error)

	TeamWeekly(ctx context.Context, userIDs []string, weekStart time.Time) (TeamWeeklyResponse, error)

	// UpdateSchedule re-checks overlap with the schedule itself excluded.
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)

	// Publish transitions a pending schedule to published.
	Publish(ctx context.Context, id string) (ScheduleResponse, error)

	DeleteSchedule(ctx context.Context, id string) error
}
