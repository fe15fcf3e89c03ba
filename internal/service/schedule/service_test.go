package schedule

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

type fakeScheduleRepo struct {
	schedules []schedule.Schedule
	nextID    int
}

func (f *fakeScheduleRepo) Create(_ context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	f.nextID++
	s.ID = "sched-" + strconv.Itoa(f.nextID)
	s.CreatedAt = time.Now()
	f.schedules = append(f.schedules, s)
	return s, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (schedule.Schedule, error) {
	for _, s := range f.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) ListByUser(_ context.Context, userID string) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByUserAndDateRange(_ context.Context, userID string, start, end time.Time) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID && !s.ShiftEnd.Before(start) && !s.ShiftStart.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByUsersAndDateRange(_ context.Context, userIDs []string, start, end time.Time) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, id := range userIDs {
		byUser, _ := f.GetByUserAndDateRange(context.Background(), id, start, end)
		out = append(out, byUser...)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Search(_ context.Context, _ schedule.SearchFilter) ([]schedule.Schedule, error) {
	return f.schedules, nil
}

func (f *fakeScheduleRepo) HasOverlapping(_ context.Context, userID string, shiftStart, shiftEnd time.Time, excludeID *string) (bool, error) {
	for _, s := range f.schedules {
		if s.UserID != userID || s.Status == schedule.StatusCancelled {
			continue
		}
		if excludeID != nil && s.ID == *excludeID {
			continue
		}
		if timesheet.Overlaps(shiftStart, shiftEnd, s.ShiftStart, s.ShiftEnd) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, updated schedule.Schedule) error {
	for i, s := range f.schedules {
		if s.ID == updated.ID {
			f.schedules[i] = updated
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	for i, s := range f.schedules {
		if s.ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return schedule.ErrScheduleNotFound
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmployeeID(_ context.Context, _ int) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ user.UserFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }

func (f *fakeUserRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService(users map[string]user.User) (schedule.ScheduleService, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{}
	calc := timesheet.NewCalculator(timesheet.SplitPerEntry, clock.System())
	svc := NewScheduleService(repo, &fakeUserRepo{users: users}, calc)
	return svc, repo
}

func testUsers() map[string]user.User {
	return map[string]user.User{
		"user-1": {ID: "user-1", FirstName: "Ada", LastName: "Lovelace", Role: user.RoleEmployee, IsActive: true},
		"user-2": {ID: "user-2", FirstName: "Grace", LastName: "Hopper", Role: user.RoleEmployee, IsActive: true},
	}
}

func shiftReq(userID, start, end string) schedule.CreateScheduleRequest {
	return schedule.CreateScheduleRequest{
		UserID:     userID,
		ShiftStart: start,
		ShiftEnd:   end,
		Location:   "Main Office",
	}
}

func TestCreateScheduleRejectsOverlap(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T16:00:00Z", "2026-03-02T20:00:00Z"), "mgr-1")
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)
}

func TestCreateScheduleBackToBackAllowed(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	// a shift starting exactly when the previous one ends is not a conflict
	created, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T17:00:00Z", "2026-03-02T21:00:00Z"), "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusPending), created.Status)
}

func TestCreateScheduleUnknownUser(t *testing.T) {
	svc, _ := newTestService(testUsers())

	_, err := svc.CreateSchedule(context.Background(), shiftReq("ghost", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestBulkCreateSkipsConflictsAndContinues(t *testing.T) {
	svc, repo := newTestService(testUsers())
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	resp, err := svc.BulkCreate(ctx, schedule.BulkCreateRequest{
		Shifts: []schedule.CreateScheduleRequest{
			shiftReq("user-2", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"),
			shiftReq("user-1", "2026-03-02T10:00:00Z", "2026-03-02T14:00:00Z"), // overlaps the seeded shift
			shiftReq("user-1", "2026-03-03T09:00:00Z", "2026-03-03T17:00:00Z"),
		},
	}, "mgr-1")
	require.NoError(t, err)

	assert.Len(t, resp.Created, 2)
	require.Len(t, resp.Skipped, 1)
	skipped := resp.Skipped[0]
	assert.Equal(t, 1, skipped.Index)
	assert.Equal(t, "user-1", skipped.UserID)
	assert.Equal(t, "2026-03-02T10:00:00Z", skipped.ShiftStart)
	assert.Equal(t, "conflict with an existing shift", skipped.Reason)

	// one seeded plus the two created
	assert.Len(t, repo.schedules, 3)
}

func TestUpdateScheduleExcludesSelfFromOverlapCheck(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	// shrinking a shift inside its own interval must not conflict with itself
	newEnd := "2026-03-02T16:00:00Z"
	updated, err := svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{
		ID:       created.ID,
		ShiftEnd: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02T16:00:00Z", updated.ShiftEnd)
	assert.InDelta(t, 7.0, updated.TotalHours, 0.001)
}

func TestUpdateScheduleInvalidInterval(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	badEnd := "2026-03-02T08:00:00Z"
	_, err = svc.UpdateSchedule(ctx, schedule.UpdateScheduleRequest{
		ID:       created.ID,
		ShiftEnd: &badEnd,
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
}

func TestPublishSchedule(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusPending), created.Status)

	published, err := svc.Publish(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusPublished), published.Status)
}

func TestWeeklyReturnsSevenDays(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-03T09:00:00Z", "2026-03-03T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // Monday
	resp, err := svc.Weekly(ctx, "user-1", weekStart)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.WeekStart)
	assert.Equal(t, "2026-03-08", resp.WeekEnd)
	assert.Equal(t, "Ada Lovelace", resp.EmployeeName)
	require.Len(t, resp.Days, 7)

	assert.False(t, resp.Days[0].HasSchedule)
	assert.True(t, resp.Days[1].HasSchedule)
	assert.Equal(t, "Tuesday", resp.Days[1].DayOfWeek)
	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
}

// racingScheduleRepo models two writers racing past the overlap pre-check:
// HasOverlapping sees nothing, but the store's exclusion constraint still
// rejects the overlapping insert.
type racingScheduleRepo struct {
	*fakeScheduleRepo
}

func (f *racingScheduleRepo) HasOverlapping(_ context.Context, _ string, _, _ time.Time, _ *string) (bool, error) {
	return false, nil
}

func (f *racingScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	conflict, _ := f.fakeScheduleRepo.HasOverlapping(ctx, s.UserID, s.ShiftStart, s.ShiftEnd, nil)
	if conflict {
		return schedule.Schedule{}, schedule.ErrScheduleConflict
	}
	return f.fakeScheduleRepo.Create(ctx, s)
}

func TestCreateScheduleConflictEnforcedByStore(t *testing.T) {
	repo := &racingScheduleRepo{fakeScheduleRepo: &fakeScheduleRepo{}}
	calc := timesheet.NewCalculator(timesheet.SplitPerEntry, clock.System())
	svc := NewScheduleService(repo, &fakeUserRepo{users: testUsers()}, calc)
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T16:00:00Z", "2026-03-02T20:00:00Z"), "mgr-1")
	assert.ErrorIs(t, err, schedule.ErrScheduleConflict)
	assert.Len(t, repo.schedules, 1)
}

func TestTeamWeeklySkipsUnknownUsers(t *testing.T) {
	svc, _ := newTestService(testUsers())
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, shiftReq("user-1", "2026-03-02T09:00:00Z", "2026-03-02T17:00:00Z"), "mgr-1")
	require.NoError(t, err)

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp, err := svc.TeamWeekly(ctx, []string{"user-1", "ghost", "user-2"}, weekStart)
	require.NoError(t, err)

	require.Len(t, resp.Members, 2)
	assert.Equal(t, "user-1", resp.Members[0].UserID)
	assert.InDelta(t, 8.0, resp.Members[0].TotalHours, 0.001)
	assert.Equal(t, "user-2", resp.Members[1].UserID)
	assert.InDelta(t, 0.0, resp.Members[1].TotalHours, 0.001)
}
