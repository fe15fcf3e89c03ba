package timesheet

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
)

// DailyThresholdHours is the fixed regular/overtime boundary: hours beyond 8
// in a split unit count as overtime.
const DailyThresholdHours = 8.0

// overtime is paid at time-and-a-half
const overtimeMultiplier = 1.5

// SplitMode selects the unit the 8-hour threshold applies to.
type SplitMode int

const (
	// SplitPerEntry splits each entry on its own, then sums the splits.
	// Two 5-hour entries on one day yield 10 regular, 0 overtime.
	SplitPerEntry SplitMode = iota

	// SplitPerDay sums a day's entries first and splits the day total,
	// the conventional payroll reading of an 8-hour workday.
	SplitPerDay
)

// Calculator turns time entries and schedules into hour totals, weekly
// buckets and report rows. It holds no state besides configuration and is
// safe for concurrent use.
type Calculator struct {
	mode SplitMode
	clk  clock.Clock
}

func NewCalculator(mode SplitMode, clk clock.Clock) *Calculator {
	return &Calculator{mode: mode, clk: clk}
}

// Round1 rounds to one decimal place, half away from zero. It is applied
// exactly once, at the final display value; internal sums stay full
// precision.
func Round1(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// EntryHours returns the worked hours of a single entry, or false while the
// entry is open. The result is not clamped; a negative value signals bad
// data and contributes nothing to regular/overtime splits.
func EntryHours(e timeentry.TimeEntry) (float64, bool) {
	d, ok := e.WorkDuration()
	if !ok {
		return 0, false
	}
	return d.Hours(), true
}

// SplitHours divides a total into regular and overtime hours against the
// fixed 8-hour threshold. Undefined or negative totals yield (0, 0).
func SplitHours(total float64) (regular, overtime float64) {
	if total <= 0 {
		return 0, 0
	}
	regular = math.Min(total, DailyThresholdHours)
	overtime = math.Max(0, total-DailyThresholdHours)
	return regular, overtime
}

// splitEntries applies the configured mode to a set of entries belonging to
// one grouping unit (a day or a week). Open entries contribute nothing.
func (c *Calculator) splitEntries(entries []timeentry.TimeEntry) (regular, overtime float64) {
	switch c.mode {
	case SplitPerDay:
		byDay := make(map[string]float64)
		for _, e := range entries {
			hours, ok := EntryHours(e)
			if !ok {
				continue
			}
			byDay[e.ClockIn.Format("2006-01-02")] += hours
		}
		for _, total := range byDay {
			r, o := SplitHours(total)
			regular += r
			overtime += o
		}
	default: // SplitPerEntry
		for _, e := range entries {
			hours, ok := EntryHours(e)
			if !ok {
				continue
			}
			r, o := SplitHours(hours)
			regular += r
			overtime += o
		}
	}
	return regular, overtime
}

// EntryDayBucket is one calendar day of a weekly time-entry view.
type EntryDayBucket struct {
	Date       time.Time
	Entries    []timeentry.TimeEntry
	TotalHours float64 // full precision; round at presentation
}

// WeeklyTimeEntries buckets entries into exactly 7 days starting at
// weekStart, keyed by clock-in date. Open entries are listed in their day
// but contribute 0 to totals. The second return value is the weekly total,
// full precision.
func (c *Calculator) WeeklyTimeEntries(entries []timeentry.TimeEntry, weekStart time.Time) ([]EntryDayBucket, float64) {
	buckets := make([]EntryDayBucket, 7)
	var weekTotal float64

	for i := range buckets {
		day := weekStart.AddDate(0, 0, i)
		dayKey := day.Format("2006-01-02")
		bucket := EntryDayBucket{Date: day}

		for _, e := range entries {
			if e.ClockIn.Format("2006-01-02") != dayKey {
				continue
			}
			bucket.Entries = append(bucket.Entries, e)
			if hours, ok := EntryHours(e); ok {
				bucket.TotalHours += hours
			}
		}

		weekTotal += bucket.TotalHours
		buckets[i] = bucket
	}

	return buckets, weekTotal
}

// ScheduleDayBucket is one calendar day of a weekly schedule view.
type ScheduleDayBucket struct {
	Date       time.Time
	Schedules  []schedule.Schedule
	TotalHours float64
}

// WeeklySchedules buckets shifts into exactly 7 days starting at weekStart.
// A shift occupies every calendar day it touches, so one spanning midnight
// shows up on both days; its hours count once per day it occupies, matching
// the per-day display the schedule pages render.
func (c *Calculator) WeeklySchedules(schedules []schedule.Schedule, weekStart time.Time) ([]ScheduleDayBucket, float64) {
	buckets := make([]ScheduleDayBucket, 7)
	var weekTotal float64

	for i := range buckets {
		day := weekStart.AddDate(0, 0, i)
		bucket := ScheduleDayBucket{Date: day}

		for _, s := range schedules {
			if !s.OccupiesDay(day) {
				continue
			}
			bucket.Schedules = append(bucket.Schedules, s)
			bucket.TotalHours += s.ScheduledHours()
		}

		buckets[i] = bucket
	}

	// The weekly total counts each shift once, not once per occupied day.
	for _, s := range schedules {
		weekTotal += s.ScheduledHours()
	}

	return buckets, weekTotal
}

// weekKey orders employee-week groups across year boundaries; the label
// shown to users carries only the ISO week number.
type weekKey struct {
	year int
	week int
}

func isoWeek(t time.Time) weekKey {
	y, w := t.ISOWeek()
	return weekKey{year: y, week: w}
}

// IndividualReport aggregates one employee's entries into summary metrics,
// chart-ready parallel arrays and report rows. With includeDetails, one row
// per entry; otherwise one row per day with min clock-in / max clock-out
// (open entries borrow "now" for the label only, never for totals).
func (c *Calculator) IndividualReport(emp user.User, entries []timeentry.TimeEntry, includeDetails bool) report.IndividualReport {
	result := report.IndividualReport{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName(),
		Chart: report.ChartData{
			Labels:        []string{},
			RegularHours:  []float64{},
			OvertimeHours: []float64{},
		},
		Rows: []report.IndividualReportRow{},
	}
	if len(entries) == 0 {
		return result
	}

	sorted := make([]timeentry.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ClockIn.Before(sorted[j].ClockIn)
	})

	byDay := make(map[string][]timeentry.TimeEntry)
	var dayKeys []string
	for _, e := range sorted {
		key := e.ClockIn.Format("2006-01-02")
		if _, seen := byDay[key]; !seen {
			dayKeys = append(dayKeys, key)
		}
		byDay[key] = append(byDay[key], e)
	}
	sort.Strings(dayKeys)

	var totalRegular, totalOvertime float64
	for _, key := range dayKeys {
		dayEntries := byDay[key]
		regular, overtime := c.splitEntries(dayEntries)
		totalRegular += regular
		totalOvertime += overtime

		day := dayEntries[0].ClockIn
		result.Chart.Labels = append(result.Chart.Labels, day.Format("01/02"))
		result.Chart.RegularHours = append(result.Chart.RegularHours, Round1(regular))
		result.Chart.OvertimeHours = append(result.Chart.OvertimeHours, Round1(overtime))

		if includeDetails {
			continue
		}

		minIn := dayEntries[0].ClockIn
		var maxOut time.Time
		for _, e := range dayEntries {
			if e.ClockOut != nil && e.ClockOut.After(maxOut) {
				maxOut = *e.ClockOut
			}
		}
		if maxOut.IsZero() {
			maxOut = c.clk.Now()
		}
		result.Rows = append(result.Rows, report.IndividualReportRow{
			Date:          day.Format("2006-01-02"),
			ClockIn:       minIn.Format("15:04"),
			ClockOut:      maxOut.Format("15:04"),
			RegularHours:  Round1(regular),
			OvertimeHours: Round1(overtime),
			Description:   "Daily Summary",
			Notes:         "",
		})
	}

	if includeDetails {
		for _, e := range sorted {
			hours, ok := EntryHours(e)
			var regular, overtime float64
			clockOut := "Active"
			if ok {
				regular, overtime = SplitHours(hours)
				clockOut = e.ClockOut.Format("15:04")
			}
			result.Rows = append(result.Rows, report.IndividualReportRow{
				Date:          e.ClockIn.Format("2006-01-02"),
				ClockIn:       e.ClockIn.Format("15:04"),
				ClockOut:      clockOut,
				RegularHours:  Round1(regular),
				OvertimeHours: Round1(overtime),
				Description:   "N/A",
				Notes:         "",
			})
		}
	}

	result.Summary = report.Summary{
		DaysWorked:    len(dayKeys),
		RegularHours:  Round1(totalRegular),
		OvertimeHours: Round1(totalOvertime),
		TotalHours:    Round1(totalRegular + totalOvertime),
	}
	return result
}

// OvertimeReport groups entries by ISO-8601 week (Monday start,
// first-four-day rule) and surfaces per-employee weeks with overtime.
// Entries whose employee id matches no known user are dropped before any
// aggregation, so rows, chart and summary all describe the same population;
// partial results beat a failed report. A missing hourly rate prices the
// overtime at zero instead of erroring.
func (c *Calculator) OvertimeReport(entries []timeentry.TimeEntry, users []user.User) report.OvertimeReport {
	result := report.OvertimeReport{
		Chart: report.ChartData{
			Labels:        []string{},
			RegularHours:  []float64{},
			OvertimeHours: []float64{},
		},
		Rows: []report.OvertimeReportRow{},
	}
	if len(entries) == 0 {
		return result
	}

	usersByEmployeeID := make(map[int]user.User, len(users))
	for _, u := range users {
		usersByEmployeeID[u.EmployeeID] = u
	}

	known := entries[:0:0]
	for _, e := range entries {
		if _, ok := usersByEmployeeID[e.EmployeeID]; ok {
			known = append(known, e)
		}
	}
	entries = known

	// Chart series: known entries grouped by week.
	byWeek := make(map[weekKey][]timeentry.TimeEntry)
	var weeks []weekKey
	daysWorked := make(map[string]struct{})
	for _, e := range entries {
		key := isoWeek(e.ClockIn)
		if _, seen := byWeek[key]; !seen {
			weeks = append(weeks, key)
		}
		byWeek[key] = append(byWeek[key], e)
		daysWorked[e.ClockIn.Format("2006-01-02")] = struct{}{}
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].year != weeks[j].year {
			return weeks[i].year < weeks[j].year
		}
		return weeks[i].week < weeks[j].week
	})

	var totalRegular, totalOvertime float64
	for _, wk := range weeks {
		regular, overtime := c.splitEntries(byWeek[wk])
		totalRegular += regular
		totalOvertime += overtime
		result.Chart.Labels = append(result.Chart.Labels, weekLabel(wk))
		result.Chart.RegularHours = append(result.Chart.RegularHours, Round1(regular))
		result.Chart.OvertimeHours = append(result.Chart.OvertimeHours, Round1(overtime))
	}

	// Report rows: per employee, per week, overtime > 0 only.
	type groupKey struct {
		employeeID int
		week       weekKey
	}
	byGroup := make(map[groupKey][]timeentry.TimeEntry)
	var groups []groupKey
	for _, e := range entries {
		key := groupKey{employeeID: e.EmployeeID, week: isoWeek(e.ClockIn)}
		if _, seen := byGroup[key]; !seen {
			groups = append(groups, key)
		}
		byGroup[key] = append(byGroup[key], e)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].employeeID != groups[j].employeeID {
			return groups[i].employeeID < groups[j].employeeID
		}
		if groups[i].week.year != groups[j].week.year {
			return groups[i].week.year < groups[j].week.year
		}
		return groups[i].week.week < groups[j].week.week
	})

	for _, g := range groups {
		emp := usersByEmployeeID[g.employeeID]
		_, overtime := c.splitEntries(byGroup[g])
		if overtime <= 0 {
			continue
		}
		rate := 0.0
		if emp.HourlyRate != nil {
			rate = *emp.HourlyRate
		}
		result.Rows = append(result.Rows, report.OvertimeReportRow{
			EmployeeName:  emp.FullName(),
			WeekLabel:     weekLabel(g.week),
			OvertimeHours: Round1(overtime),
			OvertimeCost:  math.Round(overtime*rate*overtimeMultiplier*100) / 100,
		})
	}

	result.Summary = report.Summary{
		DaysWorked:    len(daysWorked),
		RegularHours:  Round1(totalRegular),
		OvertimeHours: Round1(totalOvertime),
		TotalHours:    Round1(totalRegular + totalOvertime),
	}
	return result
}

func weekLabel(wk weekKey) string {
	return "Week " + strconv.Itoa(wk.week)
}
