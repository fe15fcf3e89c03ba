package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(n int) *int              { return &n }
func ptrFloat(f float64) *float64    { return &f }

func entry(employeeID int, in time.Time, hours float64) timeentry.TimeEntry {
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return timeentry.TimeEntry{
		ID:         "e-" + in.Format("20060102T1504"),
		EmployeeID: employeeID,
		ClockIn:    in,
		ClockOut:   ptrTime(out),
		Status:     timeentry.StatusActive,
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.849999, 7.8},
		{7.85, 7.9},
		{7.84, 7.8},
		{0.05, 0.1},
		{-0.05, -0.1},
		{8.0, 8.0},
		{0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round1(tt.in), 1e-9, "Round1(%v)", tt.in)
	}
}

func TestSplitHours(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		wantRegular  float64
		wantOvertime float64
	}{
		{"under threshold", 6.5, 6.5, 0},
		{"at threshold", 8, 8, 0},
		{"over threshold", 10.25, 8, 2.25},
		{"zero", 0, 0, 0},
		{"negative clamps to zero", -2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, overtime := SplitHours(tt.total)
			assert.InDelta(t, tt.wantRegular, regular, 1e-9)
			assert.InDelta(t, tt.wantOvertime, overtime, 1e-9)
			if tt.total > 0 {
				assert.InDelta(t, tt.total, regular+overtime, 1e-9, "split must sum back to total")
			}
		})
	}
}

func TestEntryHoursOpenEntry(t *testing.T) {
	e := timeentry.TimeEntry{ClockIn: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	_, ok := EntryHours(e)
	assert.False(t, ok)
}

func TestEntryHoursDeductions(t *testing.T) {
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	e := entry(1, in, 9)
	e.LunchClockIn = ptrTime(in.Add(3 * time.Hour))
	e.LunchClockOut = ptrTime(in.Add(4 * time.Hour))
	e.BreakDurationMinutes = ptrInt(30)

	hours, ok := EntryHours(e)
	require.True(t, ok)
	assert.InDelta(t, 7.5, hours, 1e-9)
}

func TestSplitModePerEntryVsPerDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	entries := []timeentry.TimeEntry{
		entry(1, day.Add(8*time.Hour), 5),
		entry(1, day.Add(14*time.Hour), 5),
	}

	perEntry := NewCalculator(SplitPerEntry, clock.Fixed(day))
	regular, overtime := perEntry.splitEntries(entries)
	assert.InDelta(t, 10.0, regular, 1e-9)
	assert.InDelta(t, 0.0, overtime, 1e-9)

	perDay := NewCalculator(SplitPerDay, clock.Fixed(day))
	regular, overtime = perDay.splitEntries(entries)
	assert.InDelta(t, 8.0, regular, 1e-9)
	assert.InDelta(t, 2.0, overtime, 1e-9)
}

func TestWeeklyTimeEntriesSevenBuckets(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	calc := NewCalculator(SplitPerEntry, clock.Fixed(monday))

	t.Run("empty week still has 7 days", func(t *testing.T) {
		buckets, total := calc.WeeklyTimeEntries(nil, monday)
		require.Len(t, buckets, 7)
		assert.Zero(t, total)
		for i, b := range buckets {
			assert.Equal(t, monday.AddDate(0, 0, i), b.Date)
			assert.Empty(t, b.Entries)
		}
	})

	t.Run("entries land on their clock-in day", func(t *testing.T) {
		entries := []timeentry.TimeEntry{
			entry(1, monday.Add(9*time.Hour), 8),
			entry(1, monday.AddDate(0, 0, 2).Add(9*time.Hour), 6.5),
			entry(1, monday.AddDate(0, 0, 2).Add(18*time.Hour), 2),
		}
		buckets, total := calc.WeeklyTimeEntries(entries, monday)
		require.Len(t, buckets, 7)
		assert.Len(t, buckets[0].Entries, 1)
		assert.Len(t, buckets[2].Entries, 2)
		assert.InDelta(t, 8.0, buckets[0].TotalHours, 1e-9)
		assert.InDelta(t, 8.5, buckets[2].TotalHours, 1e-9)
		assert.InDelta(t, 16.5, total, 1e-9)
	})

	t.Run("open entry listed but contributes zero", func(t *testing.T) {
		open := timeentry.TimeEntry{
			ID:      "open",
			ClockIn: monday.Add(9 * time.Hour),
		}
		buckets, total := calc.WeeklyTimeEntries([]timeentry.TimeEntry{open}, monday)
		assert.Len(t, buckets[0].Entries, 1)
		assert.Zero(t, buckets[0].TotalHours)
		assert.Zero(t, total)
	})
}

func TestWeeklySchedulesMidnightSpanningShift(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	calc := NewCalculator(SplitPerEntry, clock.Fixed(monday))

	// Tuesday 22:00 through Wednesday 06:00.
	night := schedule.Schedule{
		ID:         "s-1",
		UserID:     "user-1",
		ShiftStart: monday.AddDate(0, 0, 1).Add(22 * time.Hour),
		ShiftEnd:   monday.AddDate(0, 0, 2).Add(6 * time.Hour),
		Status:     schedule.StatusPublished,
	}

	buckets, total := calc.WeeklySchedules([]schedule.Schedule{night}, monday)
	require.Len(t, buckets, 7)

	// The shift appears on both calendar days it touches.
	require.Len(t, buckets[1].Schedules, 1)
	require.Len(t, buckets[2].Schedules, 1)
	assert.Equal(t, "s-1", buckets[1].Schedules[0].ID)
	assert.Equal(t, "s-1", buckets[2].Schedules[0].ID)
	assert.InDelta(t, 8.0, buckets[1].TotalHours, 1e-9)
	assert.InDelta(t, 8.0, buckets[2].TotalHours, 1e-9)
	for _, i := range []int{0, 3, 4, 5, 6} {
		assert.Empty(t, buckets[i].Schedules)
	}

	// The weekly total counts the shift once, not once per day.
	assert.InDelta(t, 8.0, total, 1e-9)
}

func TestIndividualReportSummaryMode(t *testing.T) {
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	emp := user.User{
		EmployeeID: 1001,
		FirstName:  "Ada",
		LastName:   "Lovelace",
	}
	entries := []timeentry.TimeEntry{
		entry(1001, day2, 10), // out of order on purpose
		entry(1001, day1, 8),
	}

	calc := NewCalculator(SplitPerEntry, clock.Fixed(day2))
	got := calc.IndividualReport(emp, entries, false)

	assert.Equal(t, 1001, got.EmployeeID)
	assert.Equal(t, "Ada Lovelace", got.EmployeeName)
	assert.Equal(t, 2, got.Summary.DaysWorked)
	assert.InDelta(t, 16.0, got.Summary.RegularHours, 1e-9)
	assert.InDelta(t, 2.0, got.Summary.OvertimeHours, 1e-9)
	assert.InDelta(t, 18.0, got.Summary.TotalHours, 1e-9)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "2026-03-02", got.Rows[0].Date)
	assert.Equal(t, "09:00", got.Rows[0].ClockIn)
	assert.Equal(t, "17:00", got.Rows[0].ClockOut)
	assert.Equal(t, "Daily Summary", got.Rows[0].Description)
	assert.InDelta(t, 8.0, got.Rows[0].RegularHours, 1e-9)
	assert.InDelta(t, 2.0, got.Rows[1].OvertimeHours, 1e-9)

	require.Len(t, got.Chart.Labels, 2)
	assert.Equal(t, "03/02", got.Chart.Labels[0])
	assert.Equal(t, "03/03", got.Chart.Labels[1])
	assert.Len(t, got.Chart.RegularHours, 2)
	assert.Len(t, got.Chart.OvertimeHours, 2)
}

func TestIndividualReportDetailsMode(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	emp := user.User{EmployeeID: 1001, FirstName: "Ada", LastName: "Lovelace"}
	entries := []timeentry.TimeEntry{
		entry(1001, day.Add(9*time.Hour), 4),
		entry(1001, day.Add(14*time.Hour), 4),
	}

	calc := NewCalculator(SplitPerEntry, clock.Fixed(day))
	got := calc.IndividualReport(emp, entries, true)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "09:00", got.Rows[0].ClockIn)
	assert.Equal(t, "13:00", got.Rows[0].ClockOut)
	assert.Equal(t, "14:00", got.Rows[1].ClockIn)
	// chart stays one point per day
	assert.Len(t, got.Chart.Labels, 1)
}

func TestIndividualReportOpenEntryShowsActive(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	emp := user.User{EmployeeID: 1001, FirstName: "Ada", LastName: "Lovelace"}
	open := timeentry.TimeEntry{ID: "open", EmployeeID: 1001, ClockIn: day.Add(9 * time.Hour)}

	calc := NewCalculator(SplitPerEntry, clock.Fixed(day.Add(11*time.Hour)))
	got := calc.IndividualReport(emp, []timeentry.TimeEntry{open}, true)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Active", got.Rows[0].ClockOut)
	assert.Zero(t, got.Rows[0].RegularHours)
	assert.Zero(t, got.Summary.TotalHours)
}

func TestIndividualReportEmpty(t *testing.T) {
	emp := user.User{EmployeeID: 1001, FirstName: "Ada", LastName: "Lovelace"}
	calc := NewCalculator(SplitPerEntry, clock.System())
	got := calc.IndividualReport(emp, nil, false)

	assert.Zero(t, got.Summary.DaysWorked)
	assert.NotNil(t, got.Rows)
	assert.Empty(t, got.Rows)
	assert.NotNil(t, got.Chart.Labels)
}

func TestOvertimeReport(t *testing.T) {
	// 2026-03-02 is a Monday in ISO week 10.
	week10 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	week11 := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	users := []user.User{
		{EmployeeID: 1001, FirstName: "Ada", LastName: "Lovelace", HourlyRate: ptrFloat(20)},
		{EmployeeID: 1002, FirstName: "Grace", LastName: "Hopper"},
	}
	entries := []timeentry.TimeEntry{
		entry(1001, week10, 10),                 // 2h OT at $20
		entry(1001, week11, 8),                  // no OT
		entry(1002, week10, 12),                 // 4h OT, no rate
		entry(9999, week10, 12),                 // unknown employee, excluded everywhere
		entry(1001, week10.AddDate(0, 0, 1), 9), // +1h OT same week
	}

	calc := NewCalculator(SplitPerEntry, clock.Fixed(week11))
	got := calc.OvertimeReport(entries, users)

	require.Len(t, got.Rows, 2)

	assert.Equal(t, "Ada Lovelace", got.Rows[0].EmployeeName)
	assert.Equal(t, "Week 10", got.Rows[0].WeekLabel)
	assert.InDelta(t, 3.0, got.Rows[0].OvertimeHours, 1e-9)
	assert.InDelta(t, 90.0, got.Rows[0].OvertimeCost, 1e-9) // 3h * 20 * 1.5

	assert.Equal(t, "Grace Hopper", got.Rows[1].EmployeeName)
	assert.InDelta(t, 4.0, got.Rows[1].OvertimeHours, 1e-9)
	assert.Zero(t, got.Rows[1].OvertimeCost, "missing rate prices overtime at zero")

	// Chart and summary cover the same entries as the rows: the unknown
	// employee's 12h does not leak into either.
	require.Len(t, got.Chart.Labels, 2)
	assert.Equal(t, "Week 10", got.Chart.Labels[0])
	assert.Equal(t, "Week 11", got.Chart.Labels[1])
	assert.InDelta(t, 24.0, got.Chart.RegularHours[0], 1e-9)
	assert.InDelta(t, 7.0, got.Chart.OvertimeHours[0], 1e-9)

	assert.Equal(t, 3, got.Summary.DaysWorked)
	assert.InDelta(t, 32.0, got.Summary.RegularHours, 1e-9)
	assert.InDelta(t, 7.0, got.Summary.OvertimeHours, 1e-9)
	assert.InDelta(t, 39.0, got.Summary.TotalHours, 1e-9)
}

func TestOvertimeReportEmpty(t *testing.T) {
	calc := NewCalculator(SplitPerEntry, clock.System())
	got := calc.OvertimeReport(nil, nil)
	assert.Empty(t, got.Rows)
	assert.Empty(t, got.Chart.Labels)
	assert.Zero(t, got.Summary.TotalHours)
}
