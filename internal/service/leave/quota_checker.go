package leave

import (
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
)

// HasOverlap reports whether [start, end] shares a date with any pending or
// approved request. Requests whose own range is empty never overlap.
func HasOverlap(existing []leave.LeaveRequest, start, end string) bool {
	if end < start {
		return false
	}
	for _, r := range existing {
		if !r.IsActive() || r.EndDate < r.StartDate {
			continue
		}
		if r.StartDate <= end && start <= r.EndDate {
			return true
		}
	}
	return false
}

// CountWorkingDays counts dates on a configured working weekday that are not
// company holidays.
func CountWorkingDays(dates []string, p timesheet.Policy) (int, error) {
	n := 0
	for _, d := range dates {
		working, err := p.IsWorkingWeekday(d)
		if err != nil {
			return 0, err
		}
		if working && !p.IsHoliday(d) {
			n++
		}
	}
	return n, nil
}

// RequestWorkingDays counts the working days of one request.
func RequestWorkingDays(r leave.LeaveRequest, p timesheet.Policy) (int, error) {
	dates, err := calendar.EnumerateInclusive(r.StartDate, r.EndDate)
	if err != nil {
		return 0, err
	}
	return CountWorkingDays(dates, p)
}

// SumApprovedAnnualDays is the annual allowance already consumed.
func SumApprovedAnnualDays(requests []leave.LeaveRequest, p timesheet.Policy) (int, error) {
	used := 0
	for _, r := range requests {
		if !r.IsApproved() || r.Type != leave.LeaveTypeAnnual {
			continue
		}
		n, err := RequestWorkingDays(r, p)
		if err != nil {
			return 0, fmt.Errorf("leave request %s: %w", r.ID, err)
		}
		used += n
	}
	return used, nil
}

// CheckAnnualQuota rejects a request needing more days than remain.
func CheckAnnualQuota(p timesheet.Policy, approved []leave.LeaveRequest, required int) error {
	used, err := SumApprovedAnnualDays(approved, p)
	if err != nil {
		return err
	}
	if used+required > p.AnnualLeaveDays {
		return fmt.Errorf("%w: %d requested, %d of %d already used", leave.ErrInsufficientQuota, required, used, p.AnnualLeaveDays)
	}
	return nil
}

// ValidateNewRequest runs every creation-time rule in order and returns the
// working days the request consumes.
func ValidateNewRequest(p timesheet.Policy, existing []leave.LeaveRequest, candidate leave.LeaveRequest) (int, error) {
	if candidate.EndDate < candidate.StartDate {
		return 0, leave.ErrInvalidDateRange
	}

	if candidate.DayType.IsHalf() && (!p.AllowHalfDay || candidate.StartDate != candidate.EndDate) {
		return 0, leave.ErrHalfDayNotAllowed
	}

	if HasOverlap(existing, candidate.StartDate, candidate.EndDate) {
		return 0, leave.ErrOverlappingLeave
	}

	required, err := RequestWorkingDays(candidate, p)
	if err != nil {
		return 0, err
	}
	if required == 0 {
		return 0, leave.ErrNoWorkingDays
	}

	if candidate.Type == leave.LeaveTypeAnnual {
		if err := CheckAnnualQuota(p, existing, required); err != nil {
			return 0, err
		}
	}

	return required, nil
}
