package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	userRepo     user.UserRepository
	logger       *slog.Logger
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, userRepo user.UserRepository, logger *slog.Logger) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	exists, err := s.overtimeRepo.ExistsActiveOnDate(ctx, claims.UserID, req.Date, claims.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to check existing overtime: %w", err)
	}
	if exists {
		return overtime.OvertimeResponse{}, overtime.ErrDuplicateOvertime
	}

	id, err := uuid.NewV7()
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now()
	created, err := s.overtimeRepo.Create(ctx, overtime.OvertimeLog{
		ID:        id.String(),
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Hours:     req.Hours,
		Reason:    req.Reason,
		Status:    overtime.OvertimeStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return overtime.NewOvertimeResponse(created), nil
}

// ApproveOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ApproveOvertime(ctx context.Context, req overtime.ReviewOvertimeRequest) (overtime.OvertimeResponse, error) {
	return s.review(ctx, req, overtime.OvertimeStatusApproved)
}

// RejectOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) RejectOvertime(ctx context.Context, req overtime.ReviewOvertimeRequest) (overtime.OvertimeResponse, error) {
	return s.review(ctx, req, overtime.OvertimeStatusRejected)
}

func (s *OvertimeServiceImpl) review(ctx context.Context, req overtime.ReviewOvertimeRequest, status overtime.OvertimeStatus) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !claims.IsAdmin() {
		return overtime.OvertimeResponse{}, user.ErrAdminPrivilegeRequired
	}

	log, err := s.overtimeRepo.GetByID(ctx, req.ID, claims.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime: %w", err)
	}
	if log.Status != overtime.OvertimeStatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	reviewer, err := s.userRepo.GetByID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get reviewer: %w", err)
	}
	snapshot := reviewer.Snapshot()
	now := time.Now()

	log.Status = status
	log.AdminNote = req.AdminNote
	log.ApprovedBy = &snapshot
	log.ApprovedAt = &now
	log.UpdatedAt = now

	if err := s.overtimeRepo.UpdateStatus(ctx, log); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime: %w", err)
	}

	s.logger.InfoContext(ctx, "overtime reviewed",
		slog.String("overtime_id", log.ID),
		slog.String("status", string(status)),
		slog.Float64("hours", log.Hours),
	)
	return overtime.NewOvertimeResponse(log), nil
}

// GetMyOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetMyOvertimes(ctx context.Context) ([]overtime.OvertimeResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := s.overtimeRepo.ListByUserID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}

	resp := make([]overtime.OvertimeResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, overtime.NewOvertimeResponse(l))
	}
	return resp, nil
}
