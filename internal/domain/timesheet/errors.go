package timesheet

import "errors"

var (
	ErrMalformedTime = errors.New("malformed time value, expected HH:mm")
	ErrInvalidPeriod = errors.New("year and month must form a valid period")
)
