package timeentry

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

// stepClock hands out a controllable time to the service under test.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeEntryRepo struct {
	entries []timeentry.TimeEntry
	nextID  int
}

func (f *fakeEntryRepo) Create(_ context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	for _, e := range f.entries {
		if e.UserID == entry.UserID && e.ClockOut == nil {
			return timeentry.TimeEntry{}, timeentry.ErrAlreadyClockedIn
		}
	}
	f.nextID++
	entry.ID = "entry-" + strconv.Itoa(f.nextID)
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, id string) (timeentry.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
}

func (f *fakeEntryRepo) GetOpenEntry(_ context.Context, userID string) (timeentry.TimeEntry, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.ClockOut == nil {
			return e, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
}

func (f *fakeEntryRepo) ListByUser(_ context.Context, userID string, _ timeentry.ListFilter) ([]timeentry.TimeEntry, int64, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntryRepo) GetByUserAndDateRange(_ context.Context, userID string, start, end time.Time) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) GetByEmployeeAndDateRange(_ context.Context, employeeID int, start, end time.Time) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		if e.EmployeeID == employeeID && !e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]timeentry.TimeEntry, error) {
	var out []timeentry.TimeEntry
	for _, e := range f.entries {
		if !e.ClockIn.Before(start) && !e.ClockIn.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) Update(_ context.Context, entry timeentry.TimeEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			f.entries[i] = entry
			return nil
		}
	}
	return timeentry.ErrEntryNotFound
}

func (f *fakeEntryRepo) Delete(_ context.Context, id string) error {
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return timeentry.ErrEntryNotFound
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

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }

func (f *fakeUserRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func newTestService() (timeentry.TimeEntryService, *stepClock) {
	clk := &stepClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	users := map[string]user.User{
		"user-1": {ID: "user-1", EmployeeID: 1001, FirstName: "Ada", LastName: "Lovelace", Role: user.RoleEmployee, IsActive: true},
	}
	calc := timesheet.NewCalculator(timesheet.SplitPerEntry, clk)
	svc := NewTimeEntryService(&fakeEntryRepo{}, &fakeUserRepo{users: users}, calc, clk)
	return svc, clk
}

func TestClockInOutLifecycle(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	entry, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02T09:00:00Z", entry.ClockIn)
	assert.Nil(t, entry.ClockOut)
	assert.Nil(t, entry.TotalHours)
	assert.Equal(t, string(timeentry.StatusActive), entry.Status)

	clk.advance(8 * time.Hour)

	closed, err := svc.ClockOut(ctx, "user-1", timeentry.ClockOutRequest{})
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)
	assert.Equal(t, "2026-03-02T17:00:00Z", *closed.ClockOut)
	require.NotNil(t, closed.TotalHours)
	assert.InDelta(t, 8.0, *closed.TotalHours, 0.001)
}

func TestClockInTwiceFails(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, "user-1")
	assert.ErrorIs(t, err, timeentry.ErrAlreadyClockedIn)
}

func TestClockOutWithoutOpenEntry(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ClockOut(context.Background(), "user-1", timeentry.ClockOutRequest{})
	assert.ErrorIs(t, err, timeentry.ErrNotClockedIn)
}

func TestLunchDeductedFromHours(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.advance(3 * time.Hour)
	_, err = svc.LunchStart(ctx, "user-1")
	require.NoError(t, err)

	clk.advance(1 * time.Hour)
	_, err = svc.LunchEnd(ctx, "user-1")
	require.NoError(t, err)

	clk.advance(5 * time.Hour)
	closed, err := svc.ClockOut(ctx, "user-1", timeentry.ClockOutRequest{})
	require.NoError(t, err)

	// 9 hours on the clock minus 1 hour of lunch
	require.NotNil(t, closed.TotalHours)
	assert.InDelta(t, 8.0, *closed.TotalHours, 0.001)
}

func TestLunchStartTwiceFails(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.LunchStart(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.LunchStart(ctx, "user-1")
	assert.ErrorIs(t, err, timeentry.ErrLunchAlreadyOpen)
}

func TestLunchEndWithoutStartFails(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.LunchEnd(ctx, "user-1")
	assert.ErrorIs(t, err, timeentry.ErrLunchNotStarted)
}

func TestBreakDeductedOnClockOut(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	clk.advance(8 * time.Hour)
	breakMinutes := 30
	closed, err := svc.ClockOut(ctx, "user-1", timeentry.ClockOutRequest{BreakDurationMinutes: &breakMinutes})
	require.NoError(t, err)

	require.NotNil(t, closed.TotalHours)
	assert.InDelta(t, 7.5, *closed.TotalHours, 0.001)
}

func TestApproveRequiresClosedEntry(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	open, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.ApproveEntry(ctx, open.ID)
	assert.ErrorIs(t, err, timeentry.ErrEntryNotEditable)

	clk.advance(8 * time.Hour)
	_, err = svc.ClockOut(ctx, "user-1", timeentry.ClockOutRequest{})
	require.NoError(t, err)

	approved, err := svc.ApproveEntry(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, string(timeentry.StatusApproved), approved.Status)
}

func TestWeeklyAlwaysSevenDays(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "user-1")
	require.NoError(t, err)
	clk.advance(8 * time.Hour)
	_, err = svc.ClockOut(ctx, "user-1", timeentry.ClockOutRequest{})
	require.NoError(t, err)

	resp, err := svc.Weekly(ctx, "user-1", timeentry.WeeklyRequest{WeekStart: "2026-03-02"})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", resp.WeekStart)
	assert.Equal(t, "2026-03-08", resp.WeekEnd)
	assert.Equal(t, "Ada Lovelace", resp.EmployeeName)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].DayOfWeek)
	assert.InDelta(t, 8.0, resp.Days[0].TotalHours, 0.001)
	assert.InDelta(t, 8.0, resp.TotalHours, 0.001)
}
