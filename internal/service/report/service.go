package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/timecardhq/timecard-backend-go/internal/domain/report"
	"github.com/timecardhq/timecard-backend-go/internal/domain/timeentry"
	"github.com/timecardhq/timecard-backend-go/internal/domain/user"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/clock"
	"github.com/timecardhq/timecard-backend-go/internal/pkg/export"
	"github.com/timecardhq/timecard-backend-go/internal/service/timesheet"
)

type ReportServiceImpl struct {
	timeentry.TimeEntryRepository
	user.UserRepository
	calc *timesheet.Calculator
	clk  clock.Clock
}

func NewReportService(entryRepository timeentry.TimeEntryRepository, userRepository user.UserRepository, calc *timesheet.Calculator, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		TimeEntryRepository: entryRepository,
		UserRepository:      userRepository,
		calc:                calc,
		clk:                 clk,
	}
}

// GetIndividualReport implements report.ReportService.
func (s *ReportServiceImpl) GetIndividualReport(ctx context.Context, req report.IndividualReportRequest) (report.IndividualReport, error) {
	emp, err := s.UserRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return report.IndividualReport{}, report.ErrEmployeeNotFound
		}
		return report.IndividualReport{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	start, end := req.Range()
	entries, err := s.TimeEntryRepository.GetByEmployeeAndDateRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.IndividualReport{}, fmt.Errorf("failed to load entries: %w", err)
	}

	return s.calc.IndividualReport(emp, entries, req.IncludeDetails), nil
}

// GetOvertimeReport implements report.ReportService.
func (s *ReportServiceImpl) GetOvertimeReport(ctx context.Context, req report.OvertimeReportRequest) (report.OvertimeReport, error) {
	start, end := req.Range()

	entries, err := s.TimeEntryRepository.GetByDateRange(ctx, start, end)
	if err != nil {
		return report.OvertimeReport{}, fmt.Errorf("failed to load entries: %w", err)
	}

	users, err := s.UserRepository.GetAll(ctx)
	if err != nil {
		return report.OvertimeReport{}, fmt.Errorf("failed to load users: %w", err)
	}

	return s.calc.OvertimeReport(entries, users), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (report.ExportResult, error) {
	var (
		content []byte
		err     error
	)

	switch req.ReportType {
	case "individual":
		rep, repErr := s.GetIndividualReport(ctx, report.IndividualReportRequest{
			EmployeeID:     req.EmployeeID,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			IncludeDetails: req.IncludeDetails,
		})
		if repErr != nil {
			return report.ExportResult{}, repErr
		}
		switch report.Format(req.Format) {
		case report.FormatExcel:
			content, err = export.ExcelIndividual(rep, req.IncludeSummary)
		case report.FormatCSV:
			content, err = export.CSVIndividual(rep, req.IncludeSummary)
		case report.FormatPDF:
			content, err = export.PDFIndividual(rep, req.IncludeSummary)
		default:
			return report.ExportResult{}, report.ErrUnsupportedFormat
		}
	case "overtime":
		rep, repErr := s.GetOvertimeReport(ctx, report.OvertimeReportRequest{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if repErr != nil {
			return report.ExportResult{}, repErr
		}
		switch report.Format(req.Format) {
		case report.FormatExcel:
			content, err = export.ExcelOvertime(rep, req.IncludeSummary)
		case report.FormatCSV:
			content, err = export.CSVOvertime(rep, req.IncludeSummary)
		case report.FormatPDF:
			content, err = export.PDFOvertime(rep, req.IncludeSummary)
		default:
			return report.ExportResult{}, report.ErrUnsupportedFormat
		}
	default:
		return report.ExportResult{}, report.ErrUnsupportedReport
	}
	if err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to render %s export: %w", req.Format, err)
	}

	return report.ExportResult{
		Content:     content,
		ContentType: contentType(report.Format(req.Format)),
		Filename:    s.filename(req.ReportType, report.Format(req.Format)),
	}, nil
}

func contentType(format report.Format) string {
	switch format {
	case report.FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case report.FormatCSV:
		return "text/csv"
	case report.FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

func (s *ReportServiceImpl) filename(reportType string, format report.Format) string {
	ext := map[report.Format]string{
		report.FormatExcel: "xlsx",
		report.FormatCSV:   "csv",
		report.FormatPDF:   "pdf",
	}[format]
	return fmt.Sprintf("%s-report-%s.%s", reportType, s.clk.Now().UTC().Format("20060102"), ext)
}
