package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	user.UserRepository
	calc *timesheet.Calculator
}

func NewScheduleService(scheduleRepository schedule.ScheduleRepository, userRepository user.UserRepository, calc *timesheet.Calculator) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepository,
		UserRepository:     userRepository,
		calc:               calc,
	}
}

func toScheduleResponse(s schedule.Schedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ID:                   s.ID,
		UserID:               s.UserID,
		EmployeeName:         s.EmployeeName,
		ShiftStart:           s.ShiftStart.Format(time.RFC3339),
		ShiftEnd:             s.ShiftEnd.Format(time.RFC3339),
		Status:               string(s.Status),
		Location:             s.Location,
		Notes:                s.Notes,
		BreakDurationMinutes: s.BreakDurationMinutes,
		TotalHours:           timesheet.Round1(s.ScheduledHours()),
		CreatedByID:          s.CreatedByID,
		CreatedByName:        s.CreatedByName,
		CreatedAt:            s.CreatedAt.Format(time.RFC3339),
	}
	if s.ModifiedAt != nil {
		modified := s.ModifiedAt.Format(time.RFC3339)
		resp.ModifiedAt = &modified
	}
	return resp
}

// CheckConflicts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CheckConflicts(ctx context.Context, req schedule.CheckConflictsRequest) (schedule.ConflictResponse, error) {
	start, _ := validator.IsValidDateTime(req.ShiftStart)
	end, _ := validator.IsValidDateTime(req.ShiftEnd)

	hasConflict, err := s.ScheduleRepository.HasOverlapping(ctx, req.UserID, start, end, req.ExcludeID)
	if err != nil {
		return schedule.ConflictResponse{}, fmt.Errorf("failed to check conflicts: %w", err)
	}
	return schedule.ConflictResponse{HasConflict: hasConflict}, nil
}

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest, createdByID string) (schedule.ScheduleResponse, error) {
	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	start, end := req.Interval()

	hasConflict, err := s.ScheduleRepository.HasOverlapping(ctx, req.UserID, start, end, nil)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if hasConflict {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleConflict
	}

	created, err := s.ScheduleRepository.Create(ctx, schedule.Schedule{
		UserID:               req.UserID,
		ShiftStart:           start,
		ShiftEnd:             end,
		Status:               schedule.StatusPending,
		BreakDurationMinutes: req.BreakDurationMinutes,
		Location:             req.Location,
		Notes:                req.Notes,
		CreatedByID:          createdByID,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(created), nil
}

// BulkCreate implements schedule.ScheduleService. Items are processed in
// order; a conflicting or failing item is reported with its index and
// proposed interval while the rest of the batch proceeds.
func (s *ScheduleServiceImpl) BulkCreate(ctx context.Context, req schedule.BulkCreateRequest, createdByID string) (schedule.BulkCreateResponse, error) {
	resp := schedule.BulkCreateResponse{
		Created: []schedule.ScheduleResponse{},
		Skipped: []schedule.SkippedShift{},
	}

	for i, shift := range req.Shifts {
		created, err := s.CreateSchedule(ctx, shift, createdByID)
		if err != nil {
			reason := "conflict with an existing shift"
			if err != schedule.ErrScheduleConflict {
				reason = err.Error()
			}
			resp.Skipped = append(resp.Skipped, schedule.SkippedShift{
				Index:      i,
				UserID:     shift.UserID,
				ShiftStart: shift.ShiftStart,
				ShiftEnd:   shift.ShiftEnd,
				Reason:     reason,
			})
			continue
		}
		resp.Created = append(resp.Created, created)
	}

	return resp, nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(sched), nil
}

// ListUserSchedules implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListUserSchedules(ctx context.Context, userID string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ScheduleRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toScheduleResponse(sched))
	}
	return responses, nil
}

// Search implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Search(ctx context.Context, filter schedule.SearchFilter) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.ScheduleRepository.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sched := range schedules {
		responses = append(responses, toScheduleResponse(sched))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) weeklyDays(schedules []schedule.Schedule, weekStart time.Time) ([]schedule.WeeklyDay, float64) {
	buckets, weekTotal := s.calc.WeeklySchedules(schedules, weekStart)

	days := make([]schedule.WeeklyDay, 0, len(buckets))
	for _, b := range buckets {
		day := schedule.WeeklyDay{
			Date:        b.Date.Format("2006-01-02"),
			DayOfWeek:   b.Date.Weekday().String(),
			Schedules:   []schedule.ScheduleResponse{},
			HasSchedule: len(b.Schedules) > 0,
		}
		for _, sched := range b.Schedules {
			day.Schedules = append(day.Schedules, toScheduleResponse(sched))
		}
		days = append(days, day)
	}
	return days, weekTotal
}

// Weekly implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Weekly(ctx context.Context, userID string, weekStart time.Time) (schedule.WeeklyResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return schedule.WeeklyResponse{}, err
	}

	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)
	schedules, err := s.ScheduleRepository.GetByUserAndDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return schedule.WeeklyResponse{}, fmt.Errorf("failed to load week schedules: %w", err)
	}

	days, weekTotal := s.weeklyDays(schedules, weekStart)

	return schedule.WeeklyResponse{
		WeekStart:    weekStart.Format("2006-01-02"),
		WeekEnd:      weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		EmployeeName: userData.FullName(),
		TotalHours:   timesheet.Round1(weekTotal),
		Days:         days,
	}, nil
}

// TeamWeekly implements schedule.ScheduleService. A user whose lookup fails
// is dropped from the response instead of failing the team view.
func (s *ScheduleServiceImpl) TeamWeekly(ctx context.Context, userIDs []string, weekStart time.Time) (schedule.TeamWeeklyResponse, error) {
	weekEnd := weekStart.AddDate(0, 0, 7).Add(-time.Second)

	schedules, err := s.ScheduleRepository.GetByUsersAndDateRange(ctx, userIDs, weekStart, weekEnd)
	if err != nil {
		return schedule.TeamWeeklyResponse{}, fmt.Errorf("failed to load team schedules: %w", err)
	}

	byUser := make(map[string][]schedule.Schedule)
	for _, sched := range schedules {
		byUser[sched.UserID] = append(byUser[sched.UserID], sched)
	}

	resp := schedule.TeamWeeklyResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		Members:   []schedule.TeamWeeklyMember{},
	}

	for _, userID := range userIDs {
		userData, err := s.UserRepository.GetByID(ctx, userID)
		if err != nil {
			continue
		}

		days, weekTotal := s.weeklyDays(byUser[userID], weekStart)
		resp.Members = append(resp.Members, schedule.TeamWeeklyMember{
			UserID:       userID,
			EmployeeName: userData.FullName(),
			TotalHours:   timesheet.Round1(weekTotal),
			Days:         days,
		})
	}

	return resp, nil
}

// UpdateSchedule implements schedule.ScheduleService. The overlap check
// excludes the schedule being updated so a shift never conflicts with
// itself.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if req.ShiftStart != nil {
		start, _ := validator.IsValidDateTime(*req.ShiftStart)
		sched.ShiftStart = start
	}
	if req.ShiftEnd != nil {
		end, _ := validator.IsValidDateTime(*req.ShiftEnd)
		sched.ShiftEnd = end
	}
	if !sched.ShiftEnd.After(sched.ShiftStart) {
		return schedule.ScheduleResponse{}, schedule.ErrInvalidInterval
	}
	if req.Status != nil {
		sched.Status = schedule.Status(*req.Status)
	}
	if req.Location != nil {
		sched.Location = *req.Location
	}
	if req.Notes != nil {
		sched.Notes = req.Notes
	}
	if req.BreakDurationMinutes != nil {
		sched.BreakDurationMinutes = req.BreakDurationMinutes
	}

	hasConflict, err := s.ScheduleRepository.HasOverlapping(ctx, sched.UserID, sched.ShiftStart, sched.ShiftEnd, &sched.ID)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to check conflicts: %w", err)
	}
	if hasConflict {
		return schedule.ScheduleResponse{}, schedule.ErrScheduleConflict
	}

	if err := s.ScheduleRepository.Update(ctx, sched); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return s.GetSchedule(ctx, req.ID)
}

// Publish implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Publish(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched.Status = schedule.StatusPublished
	if err := s.ScheduleRepository.Update(ctx, sched); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return s.GetSchedule(ctx, id)
}

// DeleteSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	return s.ScheduleRepository.Delete(ctx, id)
}
