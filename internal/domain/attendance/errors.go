package attendance

import "errors"

var (
	ErrNoWorkingDayFound   = errors.New("no working day found within the holiday lookup window")
	ErrWorkProfileNotFound = errors.New("work profile not found")
	ErrInvalidHours        = errors.New("invalid hours value")
)
