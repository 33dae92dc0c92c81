package payroll

import "errors"

var (
	ErrPreconditionViolation = errors.New("precondition violation")
	ErrInvalidMonthYear      = errors.New("invalid month-year")
	ErrSchedulerRunNotFound  = errors.New("scheduler run not found")
)
