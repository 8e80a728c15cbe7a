package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")

	// Quota checker rejections
	ErrInvalidDateRange  = errors.New("End date must not be before start date")
	ErrNoWorkingDays     = errors.New("Requested range contains no working days")
	ErrOverlappingLeave  = errors.New("Leave request overlaps an existing pending or approved request")
	ErrInsufficientQuota = errors.New("Insufficient leave quota")
	ErrHalfDayNotAllowed = errors.New("Half-day leave is not allowed for this request")
)
