package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id, companyID string) (LeaveRequest, error)

	// ListByUserID returns every request of the user, newest first
	ListByUserID(ctx context.Context, userID, companyID string) ([]LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests touching [from, to]
	ListApprovedOverlapping(ctx context.Context, userID, from, to, companyID string) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, request LeaveRequest) error
}
