package timesheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultSummaryConcurrency = 4

type TimesheetServiceImpl struct {
	userRepo           user.UserRepository
	companyRepo        company.CompanyRepository
	attendanceRepo     attendance.AttendanceRepository
	complaintRepo      attendance.ComplaintRepository
	leaveRepo          leave.LeaveRequestRepository
	overtimeRepo       overtime.OvertimeRepository
	summaryConcurrency int
	logger             *slog.Logger
}

func NewTimesheetService(
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	attendanceRepo attendance.AttendanceRepository,
	complaintRepo attendance.ComplaintRepository,
	leaveRepo leave.LeaveRequestRepository,
	overtimeRepo overtime.OvertimeRepository,
	summaryConcurrency int,
	logger *slog.Logger,
) timesheet.TimesheetService {
	if summaryConcurrency <= 0 {
		summaryConcurrency = defaultSummaryConcurrency
	}
	return &TimesheetServiceImpl{
		userRepo:           userRepo,
		companyRepo:        companyRepo,
		attendanceRepo:     attendanceRepo,
		complaintRepo:      complaintRepo,
		leaveRepo:          leaveRepo,
		overtimeRepo:       overtimeRepo,
		summaryConcurrency: summaryConcurrency,
		logger:             logger,
	}
}

// GetMonthDetail implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonthDetail(ctx context.Context, req timesheet.MonthDetailRequest) (timesheet.MonthResult, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthResult{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return timesheet.MonthResult{}, err
	}
	if !claims.IsAdmin() && claims.UserID != req.UserID {
		return timesheet.MonthResult{}, user.ErrForbidden
	}

	var (
		target user.User
		comp   company.Company
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.userRepo.GetByID(gCtx, req.UserID, claims.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		target = u
		return nil
	})
	g.Go(func() error {
		c, err := s.companyRepo.GetByID(gCtx, claims.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to get company: %w", err)
		}
		comp = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return timesheet.MonthResult{}, err
	}

	result, err := s.calculate(ctx, target, comp, req.Period)
	if err != nil {
		return timesheet.MonthResult{}, err
	}

	s.logger.DebugContext(ctx, "month calculated",
		slog.String("user_id", target.ID),
		slog.Int("year", result.Year),
		slog.Int("month", result.Month),
		slog.Int("working_days", result.WorkingDays),
		slog.Int("unpaid_days", result.UnpaidDays),
		slog.String("net_salary", result.NetSalary.String()),
	)
	return result, nil
}

// GetMonthSummary implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetMonthSummary(ctx context.Context, req timesheet.MonthSummaryRequest) (timesheet.MonthSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthSummaryResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return timesheet.MonthSummaryResponse{}, err
	}
	if !claims.IsAdmin() {
		return timesheet.MonthSummaryResponse{}, user.ErrAdminPrivilegeRequired
	}

	comp, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
	if err != nil {
		return timesheet.MonthSummaryResponse{}, fmt.Errorf("failed to get company: %w", err)
	}
	// fail once instead of once per employee
	if _, err := ResolvePolicy(comp.AttendanceConfig); err != nil {
		s.logger.WarnContext(ctx, "attendance config unusable", slog.String("company_id", comp.ID), slog.Any("error", err))
		return timesheet.MonthSummaryResponse{}, err
	}

	users, err := s.userRepo.ListActiveByCompanyID(ctx, claims.CompanyID)
	if err != nil {
		return timesheet.MonthSummaryResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	rows := make([]timesheet.SummaryRow, len(users))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.summaryConcurrency)
	for i, u := range users {
		g.Go(func() error {
			result, err := s.calculate(gCtx, u, comp, req.Period)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}
			rows[i] = timesheet.NewSummaryRow(u.ID, u.FullName, u.EmployeeCode, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return timesheet.MonthSummaryResponse{}, err
	}

	resp := timesheet.MonthSummaryResponse{
		Year:       req.Year,
		Month:      req.Month,
		Employees:  rows,
		TotalGross: decimal.Zero,
		TotalNet:   decimal.Zero,
	}
	for _, r := range rows {
		resp.TotalGross = resp.TotalGross.Add(r.GrossSalary)
		resp.TotalNet = resp.TotalNet.Add(r.NetSalary)
		resp.TotalUnpaidDays += r.UnpaidDays
		resp.TotalOTMinutes += r.OTWeekdayMinutes + r.OTWeekendMinutes + r.OTHolidayMinutes
	}

	s.logger.DebugContext(ctx, "month summary calculated",
		slog.String("company_id", comp.ID),
		slog.Int("employees", len(rows)),
		slog.Int("year", req.Year),
		slog.Int("month", req.Month),
	)
	return resp, nil
}

// calculate loads the month's records for u and runs CalcMonth over them.
func (s *TimesheetServiceImpl) calculate(ctx context.Context, u user.User, comp company.Company, period timesheet.Period) (timesheet.MonthResult, error) {
	from, to := calendar.MonthRange(period.Year, period.Month)
	in := timesheet.Input{
		Salary: u.Salary,
		Config: comp.AttendanceConfig,
		Year:   period.Year,
		Month:  period.Month,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, err := s.attendanceRepo.ListByUserBetween(gCtx, u.ID, from, to, comp.ID)
		if err != nil {
			return fmt.Errorf("failed to list attendance logs: %w", err)
		}
		in.Logs = logs
		return nil
	})
	g.Go(func() error {
		complaints, err := s.complaintRepo.ListByUserBetween(gCtx, u.ID, from, to, comp.ID)
		if err != nil {
			return fmt.Errorf("failed to list checkin complaints: %w", err)
		}
		in.Complaints = complaints
		return nil
	})
	g.Go(func() error {
		leaves, err := s.leaveRepo.ListApprovedOverlapping(gCtx, u.ID, from, to, comp.ID)
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		in.Leaves = leaves
		return nil
	})
	g.Go(func() error {
		overtimes, err := s.overtimeRepo.ListApprovedBetween(gCtx, u.ID, from, to, comp.ID)
		if err != nil {
			return fmt.Errorf("failed to list overtime logs: %w", err)
		}
		in.Overtimes = overtimes
		return nil
	})
	if err := g.Wait(); err != nil {
		return timesheet.MonthResult{}, err
	}

	return CalcMonth(in)
}
