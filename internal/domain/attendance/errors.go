package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// Complaint errors
	ErrComplaintNotFound         = errors.New("checkin complaint not found")
	ErrComplaintExists           = errors.New("a pending complaint already exists for this date and action")
	ErrComplaintAlreadyProcessed = errors.New("complaint has already been approved or rejected")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
