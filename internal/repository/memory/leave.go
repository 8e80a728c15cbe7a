package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = request
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(_ context.Context, id, companyID string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok || req.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) ListByUserID(_ context.Context, userID, companyID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.UserID == userID && req.CompanyID == companyID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r *LeaveRequestRepository) ListApprovedOverlapping(_ context.Context, userID, from, to, companyID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, req := range r.requests {
		if req.UserID == userID && req.CompanyID == companyID && req.IsApproved() &&
			req.StartDate <= to && from <= req.EndDate {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (r *LeaveRequestRepository) UpdateStatus(_ context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.requests[request.ID]
	if !ok || existing.CompanyID != request.CompanyID {
		return leave.ErrLeaveRequestNotFound
	}
	existing.Status = request.Status
	existing.AdminNote = request.AdminNote
	existing.ApprovedBy = request.ApprovedBy
	existing.ApprovedAt = request.ApprovedAt
	existing.UpdatedAt = request.UpdatedAt
	r.requests[request.ID] = existing
	return nil
}
