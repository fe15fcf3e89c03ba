package report

import "context"

// ReportService assembles aggregated reports and renders export documents.
type ReportService interface {
	GetIndividualReport(ctx context.Context, req IndividualReportRequest) (IndividualReport, error)

	GetOvertimeReport(ctx context.Context, req OvertimeReportRequest) (OvertimeReport, error)

	// Export renders a report as Excel, CSV or PDF bytes.
	Export(ctx context.Context, req ExportRequest) (ExportResult, error)
}
