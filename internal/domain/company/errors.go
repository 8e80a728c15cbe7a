package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")

	// ErrAttendanceConfigMissing means the company never saved attendance settings,
	// so nothing can be computed for its employees.
	ErrAttendanceConfigMissing = errors.New("company attendance config is not set")
	ErrInvalidAttendanceConfig = errors.New("company attendance config is invalid")
)
