package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/timecardhq/timecard-backend-go/internal/domain/schedule"
	"github.com/timecardhq/timecard-backend-go/internal/handler/http/response"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	CheckConflicts(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	TeamWeekly(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// CheckConflicts implements ScheduleHandler.
func (h *ScheduleHandlerImpl) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	req := schedule.CheckConflictsRequest{
		UserID:     r.URL.Query().Get("user_id"),
		ShiftStart: r.URL.Query().Get("shift_start"),
		ShiftEnd:   r.URL.Query().Get("shift_end"),
	}
	if excludeID := r.URL.Query().Get("exclude_id"); excludeID != "" {
		req.ExcludeID = &excludeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.CheckConflicts(r.Context(), req)
	if err != nil {
		slog.Error("CheckConflicts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), req, userID)
	if err != nil {
		slog.Error("CreateSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created", created)
}

// BulkCreate implements ScheduleHandler.
func (h *ScheduleHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req schedule.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkCreate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.BulkCreate(r.Context(), req, userID)
	if err != nil {
		slog.Error("BulkCreate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bulk create completed", result)
}

// Get implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForUser implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	targetID := chi.URLParam(r, "id")
	if !canActFor(callerID, role, targetID) {
		response.Forbidden(w, "Not allowed to view this user's schedule")
		return
	}

	result, err := h.scheduleService.ListUserSchedules(r.Context(), targetID)
	if err != nil {
		slog.Error("ListUserSchedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	var filter schedule.SearchFilter
	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.Search(r.Context(), filter)
	if err != nil {
		slog.Error("SearchSchedules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Weekly implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	weekStart, okDate := validator.IsValidDate(r.URL.Query().Get("week_start"))
	if !okDate {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	targetID := callerID
	if requested := r.URL.Query().Get("user_id"); requested != "" {
		if !canActFor(callerID, role, requested) {
			response.Forbidden(w, "Not allowed to view this user's schedule")
			return
		}
		targetID = requested
	}

	result, err := h.scheduleService.Weekly(r.Context(), targetID, weekStart)
	if err != nil {
		slog.Error("WeeklySchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamWeekly implements ScheduleHandler.
func (h *ScheduleHandlerImpl) TeamWeekly(w http.ResponseWriter, r *http.Request) {
	weekStart, okDate := validator.IsValidDate(r.URL.Query().Get("week_start"))
	if !okDate {
		response.BadRequest(w, "week_start must be in YYYY-MM-DD format", nil)
		return
	}

	userIDs := strings.Split(r.URL.Query().Get("user_ids"), ",")
	var cleaned []string
	for _, id := range userIDs {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		response.BadRequest(w, "user_ids is required", nil)
		return
	}

	result, err := h.scheduleService.TeamWeekly(r.Context(), cleaned, weekStart)
	if err != nil {
		slog.Error("TeamWeekly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateScheduleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSchedule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.scheduleService.UpdateSchedule(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", updated)
}

// Publish implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	updated, err := h.scheduleService.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("PublishSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule published", updated)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteSchedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule deleted", nil)
}
