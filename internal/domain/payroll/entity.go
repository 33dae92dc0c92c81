package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// LOPStatus enum
type LOPStatus string

const (
	LOPStatusPending   LOPStatus = "pending"
	LOPStatusApproved  LOPStatus = "approved"
	LOPStatusProcessed LOPStatus = "processed"
	LOPStatusRejected  LOPStatus = "rejected"
)

// LOP - loss-of-pay entry for one employee and month
type LOP struct {
	ID        string
	UserID    string
	Month     int
	Year      int
	Days      decimal.Decimal
	Status    LOPStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchedulerStatus enum
type SchedulerStatus string

const (
	SchedulerStatusRunning SchedulerStatus = "running"
	SchedulerStatusSuccess SchedulerStatus = "success"
	SchedulerStatusFailed  SchedulerStatus = "failed"
)

// SchedulerRun - one row of the scheduler_watch log
type SchedulerRun struct {
	ID         string
	Date       time.Time
	Command    string
	Status     SchedulerStatus
	Message    *string
	StartedAt  time.Time
	FinishedAt *time.Time
}

const (
	// CommandLOPGenerateReport is the scheduler_watch command of the monthly LOP job.
	CommandLOPGenerateReport = "lop:generate-report"

	// PayslipCutoffDay is the day of month from which payslips can be generated.
	PayslipCutoffDay = 26
	// PayslipCutoffHour is the hour of PayslipCutoffDay at which generation opens.
	PayslipCutoffHour = 12

	PayslipTemplatePrefix  = "common/payslip/"
	DefaultPayslipTemplate = PayslipTemplatePrefix + "2023_2024"

	// Defaults applied when a payslip month-year omits a part.
	DefaultPayslipYear  = 2023
	DefaultPayslipMonth = time.April
)
