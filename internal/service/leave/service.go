package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	timesheetService "github.com/hrsaas/timesheet-backend/internal/service/timesheet"
)

type LeaveServiceImpl struct {
	leaveRepo   leave.LeaveRequestRepository
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	logger      *slog.Logger
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:   leaveRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (l *LeaveServiceImpl) policy(ctx context.Context, companyID string) (timesheet.Policy, error) {
	comp, err := l.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return timesheet.Policy{}, fmt.Errorf("failed to get company: %w", err)
	}
	return timesheetService.ResolvePolicy(comp.AttendanceConfig)
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	p, err := l.policy(ctx, claims.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	existing, err := l.leaveRepo.ListByUserID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	candidate := leave.LeaveRequest{
		ID:        id.String(),
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Type:      leave.LeaveType(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DayType:   req.DayTypeOrDefault(),
		Reason:    req.Reason,
		Status:    leave.LeaveRequestStatusPending,
	}

	workingDays, err := ValidateNewRequest(p, existing, candidate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := l.leaveRepo.Create(ctx, candidate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	l.logger.InfoContext(ctx, "leave request created",
		slog.String("leave_request_id", created.ID),
		slog.String("user_id", created.UserID),
		slog.String("type", string(created.Type)),
		slog.Int("working_days", workingDays),
	)
	return leave.NewLeaveRequestResponse(created, workingDays), nil
}

// ApproveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return l.review(ctx, req, leave.LeaveRequestStatusApproved)
}

// RejectRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	return l.review(ctx, req, leave.LeaveRequestStatusRejected)
}

func (l *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewLeaveRequest, status leave.LeaveRequestStatus) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !claims.IsAdmin() {
		return leave.LeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	request, err := l.leaveRepo.GetByID(ctx, req.ID, claims.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	p, err := l.policy(ctx, claims.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	workingDays, err := RequestWorkingDays(request, p)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// pending requests pass the quota check alone, so approvals are checked again
	if status == leave.LeaveRequestStatusApproved && request.Type == leave.LeaveTypeAnnual {
		all, err := l.leaveRepo.ListByUserID(ctx, request.UserID, claims.CompanyID)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
		}
		if err := CheckAnnualQuota(p, all, workingDays); err != nil {
			return leave.LeaveRequestResponse{}, err
		}
	}

	reviewer, err := l.userRepo.GetByID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get reviewer: %w", err)
	}
	snapshot := reviewer.Snapshot()
	now := time.Now()

	request.Status = status
	request.AdminNote = req.AdminNote
	request.ApprovedBy = &snapshot
	request.ApprovedAt = &now
	request.UpdatedAt = now

	if err := l.leaveRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	l.logger.InfoContext(ctx, "leave request reviewed",
		slog.String("leave_request_id", request.ID),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewer.ID),
	)
	return leave.NewLeaveRequestResponse(request, workingDays), nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := l.policy(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}

	requests, err := l.leaveRepo.ListByUserID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		n, err := RequestWorkingDays(r, p)
		if err != nil {
			return nil, err
		}
		resp = append(resp, leave.NewLeaveRequestResponse(r, n))
	}
	return resp, nil
}

// GetMyBalance implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyBalance(ctx context.Context) (leave.BalanceResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	p, err := l.policy(ctx, claims.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	requests, err := l.leaveRepo.ListByUserID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	used, err := SumApprovedAnnualDays(requests, p)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		AnnualLeaveDays: p.AnnualLeaveDays,
		Used:            used,
		Remaining:       max(0, p.AnnualLeaveDays-used),
	}, nil
}
