package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	LunchStart(w http.ResponseWriter, r *http.Request)
	LunchEnd(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	entryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(entryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{entryService: entryService}
}

// ClockIn implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	entry, err := h.entryService.ClockIn(r.Context(), userID)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", entry)
}

// ClockOut implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	var req timeentry.ClockOutRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.entryService.ClockOut(r.Context(), userID, req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", entry)
}

// LunchStart implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) LunchStart(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	entry, err := h.entryService.LunchStart(r.Context(), userID)
	if err != nil {
		slog.Error("LunchStart service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch started", entry)
}

// LunchEnd implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) LunchEnd(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	entry, err := h.entryService.LunchEnd(r.Context(), userID)
	if err != nil {
		slog.Error("LunchEnd service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Lunch ended", entry)
}

// Create implements TimeEntryHandler, the manager-side manual entry form.
func (h *TimeEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeentry.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.entryService.CreateEntry(r.Context(), req)
	if err != nil {
		slog.Error("CreateEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created", entry)
}

// Get implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	entry, err := h.entryService.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !canActFor(userID, role, entry.UserID) {
		response.HandleError(w, timeentry.ErrUnauthorizedAccess)
		return
	}

	response.Success(w, entry)
}

// List implements TimeEntryHandler. Managers may list another user's
// entries via the user_id query parameter.
func (h *TimeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	targetID := userID
	if requested := r.URL.Query().Get("user_id"); requested != "" {
		if !canActFor(userID, role, requested) {
			response.HandleError(w, timeentry.ErrUnauthorizedAccess)
			return
		}
		targetID = requested
	}

	var filter timeentry.ListFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.entryService.ListEntries(r.Context(), targetID, filter)
	if err != nil {
		slog.Error("ListEntries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// Weekly implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User ID not found in token")
		return
	}

	req := timeentry.WeeklyRequest{WeekStart: r.URL.Query().Get("week_start")}

	targetID := userID
	if requested := r.URL.Query().Get("user_id"); requested != "" {
		if !canActFor(userID, role, requested) {
			response.HandleError(w, timeentry.ErrUnauthorizedAccess)
			return
		}
		targetID = requested
	}

	result, err := h.entryService.Weekly(r.Context(), targetID, req)
	if err != nil {
		slog.Error("Weekly service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req timeentry.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.entryService.UpdateEntry(r.Context(), req)
	if err != nil {
		slog.Error("UpdateEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated", entry)
}

// Approve implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entryService.ApproveEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("ApproveEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry approved", entry)
}

// Reject implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entryService.RejectEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("RejectEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry rejected", entry)
}

// Delete implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entryService.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("DeleteEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
