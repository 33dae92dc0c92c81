package report

import "errors"

var (
	ErrInvalidMonth           = errors.New("month must be in YYYY-MM format")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
