package report

import "errors"

// Report domain errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrUnsupportedReport = errors.New("unsupported report type")
)
