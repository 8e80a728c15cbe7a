package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance logs.
// All methods include companyID parameter to prevent cross-company data access attacks.
type AttendanceRepository interface {
	// GetByUserAndDate returns ErrAttendanceNotFound when the user has no log for date
	GetByUserAndDate(ctx context.Context, userID, date, companyID string) (AttendanceLog, error)

	// Create inserts a log; (user, date) is unique
	Create(ctx context.Context, log AttendanceLog) (AttendanceLog, error)

	// Update persists check-out fields of an existing log
	Update(ctx context.Context, log AttendanceLog) error

	// ListByUserBetween returns logs with from <= date <= to, ordered by date
	ListByUserBetween(ctx context.Context, userID, from, to, companyID string) ([]AttendanceLog, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint CheckinComplaint) (CheckinComplaint, error)
	GetByID(ctx context.Context, id, companyID string) (CheckinComplaint, error)

	// ExistsPending reports whether a pending complaint exists for user+date+action
	ExistsPending(ctx context.Context, userID, date string, action ComplaintAction, companyID string) (bool, error)

	// UpdateReview stores status, note and reviewer
	UpdateReview(ctx context.Context, complaint CheckinComplaint) error

	ListByUserBetween(ctx context.Context, userID, from, to, companyID string) ([]CheckinComplaint, error)
}
