package leave

import (
	"context"
)

type LeaveService interface {
	// CreateRequest validates overlap, half-day rules and annual quota before saving as pending
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveRequestResponse, error)

	// ApproveRequest re-checks annual quota against already approved requests
	ApproveRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, req ReviewLeaveRequest) (LeaveRequestResponse, error)

	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	GetMyBalance(ctx context.Context) (BalanceResponse, error)
}
