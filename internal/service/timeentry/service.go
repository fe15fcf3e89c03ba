package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

type TimeEntryServiceImpl struct {
	timeentry.TimeEntryRepository
	user.UserRepository
	calc *timesheet.Calculator
	clk  clock.Clock
}

func NewTimeEntryService(entryRepository timeentry.TimeEntryRepository, userRepository user.UserRepository, calc *timesheet.Calculator, clk clock.Clock) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		TimeEntryRepository: entryRepository,
		UserRepository:      userRepository,
		calc:                calc,
		clk:                 clk,
	}
}

func toEntryResponse(e timeentry.TimeEntry) timeentry.EntryResponse {
	formatPtr := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format(time.RFC3339)
		return &s
	}

	resp := timeentry.EntryResponse{
		ID:                   e.ID,
		UserID:               e.UserID,
		EmployeeID:           e.EmployeeID,
		EmployeeName:         e.EmployeeName,
		ClockIn:              e.ClockIn.Format(time.RFC3339),
		ClockOut:             formatPtr(e.ClockOut),
		LunchClockIn:         formatPtr(e.LunchClockIn),
		LunchClockOut:        formatPtr(e.LunchClockOut),
		BreakDurationMinutes: e.BreakDurationMinutes,
		Status:               string(e.Status),
	}
	if hours, ok := timesheet.EntryHours(e); ok {
		rounded := timesheet.Round1(hours)
		resp.TotalHours = &rounded
	}
	return resp
}

// ClockIn implements timeentry.TimeEntryService. The one-open-entry rule is
// enforced by the store, so two racing clock-ins cannot both succeed.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, userID string) (timeentry.EntryResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	created, err := s.TimeEntryRepository.Create(ctx, timeentry.TimeEntry{
		UserID:     userData.ID,
		EmployeeID: userData.EmployeeID,
		ClockIn:    s.clk.Now(),
		Status:     timeentry.StatusActive,
	})
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	return toEntryResponse(created), nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, userID string, req timeentry.ClockOutRequest) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetOpenEntry(ctx, userID)
	if err != nil {
		if err == timeentry.ErrEntryNotFound {
			return timeentry.EntryResponse{}, timeentry.ErrNotClockedIn
		}
		return timeentry.EntryResponse{}, err
	}

	now := s.clk.Now()
	if now.Before(entry.ClockIn) {
		return timeentry.EntryResponse{}, timeentry.ErrClockOutBeforeIn
	}

	entry.ClockOut = &now
	if req.BreakDurationMinutes != nil {
		entry.BreakDurationMinutes = req.BreakDurationMinutes
	}

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return s.GetEntry(ctx, entry.ID)
}

// LunchStart implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) LunchStart(ctx context.Context, userID string) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetOpenEntry(ctx, userID)
	if err != nil {
		if err == timeentry.ErrEntryNotFound {
			return timeentry.EntryResponse{}, timeentry.ErrNotClockedIn
		}
		return timeentry.EntryResponse{}, err
	}

	if entry.LunchClockIn != nil && entry.LunchClockOut == nil {
		return timeentry.EntryResponse{}, timeentry.ErrLunchAlreadyOpen
	}

	now := s.clk.Now()
	entry.LunchClockIn = &now
	entry.LunchClockOut = nil

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return s.GetEntry(ctx, entry.ID)
}

// LunchEnd implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) LunchEnd(ctx context.Context, userID string) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetOpenEntry(ctx, userID)
	if err != nil {
		if err == timeentry.ErrEntryNotFound {
			return timeentry.EntryResponse{}, timeentry.ErrNotClockedIn
		}
		return timeentry.EntryResponse{}, err
	}

	if entry.LunchClockIn == nil || entry.LunchClockOut != nil {
		return timeentry.EntryResponse{}, timeentry.ErrLunchNotStarted
	}

	now := s.clk.Now()
	entry.LunchClockOut = &now

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return s.GetEntry(ctx, entry.ID)
}

// CreateEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) CreateEntry(ctx context.Context, req timeentry.CreateEntryRequest) (timeentry.EntryResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	parsePtr := func(v *string) *time.Time {
		if v == nil {
			return nil
		}
		t, _ := validator.IsValidDateTime(*v)
		return &t
	}

	clockIn, _ := validator.IsValidDateTime(req.ClockIn)

	created, err := s.TimeEntryRepository.Create(ctx, timeentry.TimeEntry{
		UserID:               userData.ID,
		EmployeeID:           userData.EmployeeID,
		ClockIn:              clockIn,
		ClockOut:             parsePtr(req.ClockOut),
		LunchClockIn:         parsePtr(req.LunchClockIn),
		LunchClockOut:        parsePtr(req.LunchClockOut),
		BreakDurationMinutes: req.BreakDurationMinutes,
		Status:               timeentry.StatusActive,
	})
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	return toEntryResponse(created), nil
}

// GetEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetEntry(ctx context.Context, id string) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}
	return toEntryResponse(entry), nil
}

// ListEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListEntries(ctx context.Context, userID string, filter timeentry.ListFilter) (timeentry.ListEntriesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	entries, total, err := s.TimeEntryRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return timeentry.ListEntriesResponse{}, err
	}

	responses := make([]timeentry.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toEntryResponse(e))
	}

	return timeentry.ListEntriesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Entries:    responses,
	}, nil
}

// Weekly implements timeentry.TimeEntryService. The response always holds
// exactly 7 days, empty ones included.
func (s *TimeEntryServiceImpl) Weekly(ctx context.Context, userID string, req timeentry.WeeklyRequest) (timeentry.WeeklyResponse, error) {
	weekStart, err := req.Validate()
	if err != nil {
		return timeentry.WeeklyResponse{}, err
	}
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return timeentry.WeeklyResponse{}, err
	}

	entries, err := s.TimeEntryRepository.GetByUserAndDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return timeentry.WeeklyResponse{}, fmt.Errorf("failed to load week entries: %w", err)
	}

	buckets, weekTotal := s.calc.WeeklyTimeEntries(entries, weekStart)

	days := make([]timeentry.WeeklyDay, 0, len(buckets))
	for _, b := range buckets {
		day := timeentry.WeeklyDay{
			Date:       b.Date.Format("2006-01-02"),
			DayOfWeek:  b.Date.Weekday().String(),
			Entries:    []timeentry.EntryResponse{},
			TotalHours: timesheet.Round1(b.TotalHours),
		}
		for _, e := range b.Entries {
			day.Entries = append(day.Entries, toEntryResponse(e))
		}
		days = append(days, day)
	}

	return timeentry.WeeklyResponse{
		WeekStart:    weekStart.Format("2006-01-02"),
		WeekEnd:      weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		EmployeeName: userData.FullName(),
		TotalHours:   timesheet.Round1(weekTotal),
		Days:         days,
	}, nil
}

// UpdateEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) UpdateEntry(ctx context.Context, req timeentry.UpdateEntryRequest) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}

	parseInto := func(v *string, dst **time.Time) {
		if v == nil {
			return
		}
		t, _ := validator.IsValidDateTime(*v)
		*dst = &t
	}

	if req.ClockIn != nil {
		t, _ := validator.IsValidDateTime(*req.ClockIn)
		entry.ClockIn = t
	}
	parseInto(req.ClockOut, &entry.ClockOut)
	parseInto(req.LunchClockIn, &entry.LunchClockIn)
	parseInto(req.LunchClockOut, &entry.LunchClockOut)
	if req.BreakDurationMinutes != nil {
		entry.BreakDurationMinutes = req.BreakDurationMinutes
	}

	if entry.ClockOut != nil && entry.ClockOut.Before(entry.ClockIn) {
		return timeentry.EntryResponse{}, timeentry.ErrClockOutBeforeIn
	}

	entry.Status = timeentry.StatusEdited

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return s.GetEntry(ctx, entry.ID)
}

func (s *TimeEntryServiceImpl) setStatus(ctx context.Context, id string, status timeentry.Status) (timeentry.EntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.EntryResponse{}, err
	}
	if entry.IsOpen() {
		return timeentry.EntryResponse{}, timeentry.ErrEntryNotEditable
	}

	entry.Status = status
	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.EntryResponse{}, err
	}

	return s.GetEntry(ctx, id)
}

// ApproveEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ApproveEntry(ctx context.Context, id string) (timeentry.EntryResponse, error) {
	return s.setStatus(ctx, id, timeentry.StatusApproved)
}

// RejectEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) RejectEntry(ctx context.Context, id string) (timeentry.EntryResponse, error) {
	return s.setStatus(ctx, id, timeentry.StatusRejected)
}

// DeleteEntry implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.TimeEntryRepository.Delete(ctx, id)
}
