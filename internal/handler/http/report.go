package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
	"github.com/timecardhq/timecard-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Individual(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Individual implements ReportHandler.
func (h *ReportHandlerImpl) Individual(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := strconv.Atoi(r.URL.Query().Get("employee_id"))
	req := report.IndividualReportRequest{
		EmployeeID:     employeeID,
		StartDate:      r.URL.Query().Get("start_date"),
		EndDate:        r.URL.Query().Get("end_date"),
		IncludeDetails: r.URL.Query().Get("include_details") == "true",
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetIndividualReport(r.Context(), req)
	if err != nil {
		slog.Error("IndividualReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overtime implements ReportHandler.
func (h *ReportHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	req := report.OvertimeReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GetOvertimeReport(r.Context(), req)
	if err != nil {
		slog.Error("OvertimeReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler. The rendered document is served as a
// file download rather than a JSON envelope.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := strconv.Atoi(r.URL.Query().Get("employee_id"))
	req := report.ExportRequest{
		ReportType:     r.URL.Query().Get("report_type"),
		Format:         r.URL.Query().Get("format"),
		EmployeeID:     employeeID,
		StartDate:      r.URL.Query().Get("start_date"),
		EndDate:        r.URL.Query().Get("end_date"),
		IncludeDetails: r.URL.Query().Get("include_details") == "true",
		IncludeSummary: r.URL.Query().Get("include_summary") != "false",
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		slog.Error("ExportReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, result.Content, result.ContentType, result.Filename)
}
