package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

type fakeEntryRepo struct {
	entries []timeentry.TimeEntry
}

func (f *fakeEntryRepo) Create(_ context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeEntryRepo) GetByID(_ context.Context, _ string) (timeentry.TimeEntry, error) {
	return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
}

func (f *fakeEntryRepo) GetOpenEntry(_ context.Context, _ string) (timeentry.TimeEntry, error) {
	return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
}

func (f *fakeEntryRepo) ListByUser(_ context.Context, _ string, _ timeentry.ListFilter) ([]timeentry.TimeEntry, int64, error) {
	return nil, 0, nil
}

func (f *fakeEntryRepo) GetByUserAndDateRange(_ context.Context, _ string, _, _ time.Time) ([]timeentry.TimeEntry, error) {
	return nil, nil
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

func (f *fakeEntryRepo) Update(_ context.Context, _ timeentry.TimeEntry) error { return nil }

func (f *fakeEntryRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmployeeID(_ context.Context, employeeID int) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ user.UserFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]user.User, error) { return f.users, nil }

func (f *fakeUserRepo) Update(_ context.Context, _ user.User) error { return nil }

func (f *fakeUserRepo) UpdatePassword(_ context.Context, _ string, _ string) error { return nil }

func (f *fakeUserRepo) SetActive(_ context.Context, _ string, _ bool) error { return nil }

func (f *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func ptrTime(t time.Time) *time.Time { return &t }
func ptrFloat(f float64) *float64    { return &f }

func seededService(now time.Time) report.ReportService {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(10 * time.Hour)
	entryRepo := &fakeEntryRepo{entries: []timeentry.TimeEntry{{
		ID:         "e-1",
		UserID:     "user-1",
		EmployeeID: 1001,
		ClockIn:    in,
		ClockOut:   ptrTime(out),
		Status:     timeentry.StatusActive,
	}}}
	userRepo := &fakeUserRepo{users: []user.User{{
		ID:         "user-1",
		EmployeeID: 1001,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		HourlyRate: ptrFloat(20),
	}}}
	calc := timesheet.NewCalculator(timesheet.SplitPerEntry, clock.Fixed(now))
	return NewReportService(entryRepo, userRepo, calc, clock.Fixed(now))
}

func TestExportFilenameFromClock(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	svc := seededService(now)

	result, err := svc.Export(context.Background(), report.ExportRequest{
		ReportType:     "overtime",
		Format:         "csv",
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-07",
		IncludeSummary: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "overtime-report-20260315.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.NotEmpty(t, result.Content)
}

func TestExportIndividualExcel(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	svc := seededService(now)

	result, err := svc.Export(context.Background(), report.ExportRequest{
		ReportType:     "individual",
		Format:         "excel",
		EmployeeID:     1001,
		StartDate:      "2026-03-01",
		EndDate:        "2026-03-07",
		IncludeSummary: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "individual-report-20260315.xlsx", result.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.ContentType)
	// xlsx files are zip archives
	require.GreaterOrEqual(t, len(result.Content), 4)
	assert.Equal(t, []byte{'P', 'K', 0x03, 0x04}, result.Content[:4])
}

func TestExportUnknownEmployee(t *testing.T) {
	svc := seededService(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	_, err := svc.Export(context.Background(), report.ExportRequest{
		ReportType: "individual",
		Format:     "csv",
		EmployeeID: 9999,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-07",
	})
	assert.ErrorIs(t, err, report.ErrEmployeeNotFound)
}

func TestExportRejectsUnknownKinds(t *testing.T) {
	svc := seededService(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.Export(ctx, report.ExportRequest{
		ReportType: "payroll",
		Format:     "csv",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-07",
	})
	assert.ErrorIs(t, err, report.ErrUnsupportedReport)

	_, err = svc.Export(ctx, report.ExportRequest{
		ReportType: "overtime",
		Format:     "docx",
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-07",
	})
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
}
