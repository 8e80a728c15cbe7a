package attendance

import (
	"context"
)

// AttendanceService defines business logic for punches and punch complaints
type AttendanceService interface {
	// CheckIn records the first punch of the day for the authenticated user
	CheckIn(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// CheckOut closes the day's log and derives total hours
	CheckOut(ctx context.Context, req PunchRequest) (AttendanceResponse, error)

	// CreateComplaint files a correction for a missed or wrong punch
	CreateComplaint(ctx context.Context, req CreateComplaintRequest) (ComplaintResponse, error)

	// ApproveComplaint marks the complaint approved; the log itself is left untouched
	ApproveComplaint(ctx context.Context, req ReviewComplaintRequest) (ComplaintResponse, error)

	RejectComplaint(ctx context.Context, req ReviewComplaintRequest) (ComplaintResponse, error)
}
