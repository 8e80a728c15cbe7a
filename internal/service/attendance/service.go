package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	timesheetService "github.com/hrsaas/timesheet-backend/internal/service/timesheet"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	complaintRepo  attendance.ComplaintRepository
	userRepo       user.UserRepository
	companyRepo    company.CompanyRepository
	location       *time.Location
	now            func() time.Time
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	complaintRepo attendance.ComplaintRepository,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	location *time.Location,
	logger *slog.Logger,
) *AttendanceServiceImpl {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		complaintRepo:  complaintRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		location:       location,
		now:            time.Now,
		logger:         logger,
	}
}

var _ attendance.AttendanceService = (*AttendanceServiceImpl)(nil)

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now().In(a.location)
	date, clock := punchTime(now)

	_, err = a.attendanceRepo.GetByUserAndDate(ctx, claims.UserID, date, claims.CompanyID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	created, err := a.attendanceRepo.Create(ctx, attendance.AttendanceLog{
		ID:           id.String(),
		UserID:       claims.UserID,
		CompanyID:    claims.CompanyID,
		Date:         date,
		CheckIn:      &clock,
		CheckInImage: req.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	a.logger.InfoContext(ctx, "checked in",
		slog.String("user_id", claims.UserID),
		slog.String("date", date),
		slog.String("time", clock),
	)
	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.now().In(a.location)
	date, clock := punchTime(now)

	log, err := a.attendanceRepo.GetByUserAndDate(ctx, claims.UserID, date, claims.CompanyID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if log.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if log.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	breakStart, breakEnd, err := a.breakWindow(ctx, claims.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	hours, err := TotalHours(*log.CheckIn, clock, breakStart, breakEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	log.CheckOut = &clock
	log.CheckOutImage = req.ImageURL
	log.TotalHours = &hours
	log.UpdatedAt = now

	if err := a.attendanceRepo.Update(ctx, log); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	a.logger.InfoContext(ctx, "checked out",
		slog.String("user_id", claims.UserID),
		slog.String("date", date),
		slog.Float64("total_hours", hours),
	)
	return attendance.NewAttendanceResponse(log), nil
}

// punchTime splits a local timestamp into the stored date and HH:mm clock.
func punchTime(now time.Time) (string, string) {
	return now.Format(calendar.DateLayout), calendar.FormatClock(now.Hour()*60+now.Minute())
}

// breakWindow falls back to no break when the company has no config yet.
func (a *AttendanceServiceImpl) breakWindow(ctx context.Context, companyID string) (int, int, error) {
	comp, err := a.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get company: %w", err)
	}
	p, err := timesheetService.ResolvePolicy(comp.AttendanceConfig)
	if errors.Is(err, company.ErrAttendanceConfigMissing) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}
	return p.BreakStartMinutes, p.BreakEndMinutes, nil
}

// TotalHours is the worked time between two punches minus the part spent in
// the break window, rounded to two decimals and never negative.
func TotalHours(checkIn, checkOut string, breakStart, breakEnd int) (float64, error) {
	in, err := calendar.ParseClock(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := calendar.ParseClock(checkOut)
	if err != nil {
		return 0, err
	}

	overlap := max(0, min(out, breakEnd)-max(in, breakStart))
	worked := max(0, out-in-overlap)

	return decimal.NewFromInt(int64(worked)).Div(decimal.NewFromInt(60)).Round(2).InexactFloat64(), nil
}

// CreateComplaint implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateComplaint(ctx context.Context, req attendance.CreateComplaintRequest) (attendance.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ComplaintResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return attendance.ComplaintResponse{}, err
	}

	action := attendance.ComplaintAction(req.Action)
	exists, err := a.complaintRepo.ExistsPending(ctx, claims.UserID, req.Date, action, claims.CompanyID)
	if err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to check pending complaints: %w", err)
	}
	if exists {
		return attendance.ComplaintResponse{}, attendance.ErrComplaintExists
	}

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := a.now()
	created, err := a.complaintRepo.Create(ctx, attendance.CheckinComplaint{
		ID:        id.String(),
		UserID:    claims.UserID,
		CompanyID: claims.CompanyID,
		Date:      req.Date,
		Action:    action,
		Time:      req.Time,
		Reason:    req.Reason,
		Evidence:  req.Evidence,
		Status:    attendance.ComplaintStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to create complaint: %w", err)
	}

	return attendance.NewComplaintResponse(created), nil
}

// ApproveComplaint implements attendance.AttendanceService.
// The attendance log is left as punched; the approved time is merged in when a month is calculated.
func (a *AttendanceServiceImpl) ApproveComplaint(ctx context.Context, req attendance.ReviewComplaintRequest) (attendance.ComplaintResponse, error) {
	return a.review(ctx, req, attendance.ComplaintStatusApproved)
}

// RejectComplaint implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RejectComplaint(ctx context.Context, req attendance.ReviewComplaintRequest) (attendance.ComplaintResponse, error) {
	return a.review(ctx, req, attendance.ComplaintStatusRejected)
}

func (a *AttendanceServiceImpl) review(ctx context.Context, req attendance.ReviewComplaintRequest, status attendance.ComplaintStatus) (attendance.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ComplaintResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return attendance.ComplaintResponse{}, err
	}
	if !claims.IsAdmin() {
		return attendance.ComplaintResponse{}, user.ErrAdminPrivilegeRequired
	}

	complaint, err := a.complaintRepo.GetByID(ctx, req.ID, claims.CompanyID)
	if err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to get complaint: %w", err)
	}
	if complaint.Status != attendance.ComplaintStatusPending {
		return attendance.ComplaintResponse{}, attendance.ErrComplaintAlreadyProcessed
	}

	reviewer, err := a.userRepo.GetByID(ctx, claims.UserID, claims.CompanyID)
	if err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to get reviewer: %w", err)
	}
	snapshot := reviewer.Snapshot()
	now := a.now()

	complaint.Status = status
	complaint.AdminNote = req.AdminNote
	complaint.ReviewedBy = &snapshot
	complaint.ReviewedAt = &now
	complaint.UpdatedAt = now

	if err := a.complaintRepo.UpdateReview(ctx, complaint); err != nil {
		return attendance.ComplaintResponse{}, fmt.Errorf("failed to update complaint: %w", err)
	}

	a.logger.InfoContext(ctx, "complaint reviewed",
		slog.String("complaint_id", complaint.ID),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewer.ID),
	)
	return attendance.NewComplaintResponse(complaint), nil
}
