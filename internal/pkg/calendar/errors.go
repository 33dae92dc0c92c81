package calendar

import "errors"

var (
	ErrUnparseableInput = errors.New("unparseable date input")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidWeekday   = errors.New("invalid weekday name")
)
