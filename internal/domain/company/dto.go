package company

import (
	"math"

	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
)

// MaxPolicyNumber bounds every numeric config field.
const MaxPolicyNumber = math.MaxInt32

type CompanyResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Code             *string           `json:"code,omitempty"`
	AttendanceConfig *AttendanceConfig `json:"attendance_config,omitempty"`
}

type UpdateAttendanceConfigRequest struct {
	AttendanceConfig
}

func (r *UpdateAttendanceConfigRequest) Validate() error {
	var errs validator.ValidationErrors
	wh := r.WorkingHours

	clocks := map[string]string{
		"working_hours.start_time":  wh.StartTime,
		"working_hours.end_time":    wh.EndTime,
		"working_hours.break_start": wh.BreakStart,
		"working_hours.break_end":   wh.BreakEnd,
	}
	for field, value := range clocks {
		if value != "" && !calendar.IsValidClock(value) {
			errs = errs.Add(field, "must be a time in HH:mm format")
		}
	}

	for _, day := range wh.WorkingDays {
		if !calendar.Weekday(day).IsValid() {
			errs = errs.Add("working_hours.working_days", "unknown weekday "+day)
			break
		}
	}
	for _, d := range wh.CompanyHolidays {
		if !calendar.IsValidDate(d) {
			errs = errs.Add("working_hours.company_holidays", "invalid date "+d)
			break
		}
	}

	numbers := map[string]NumericString{
		"late_rule.allow_minutes":                      r.LateRule.AllowMinutes,
		"late_rule.unit_minutes":                       r.LateRule.UnitMinutes,
		"late_rule.max_late_as_absent_minutes":         r.LateRule.MaxLateAsAbsentMinutes,
		"early_leave_rule.unit_minutes":                r.EarlyLeaveRule.UnitMinutes,
		"early_leave_rule.max_early_as_absent_minutes": r.EarlyLeaveRule.MaxEarlyAsAbsentMinutes,
		"overtime_policy.min_ot_minutes":               r.OvertimePolicy.MinOTMinutes,
		"overtime_policy.round_to_minutes":             r.OvertimePolicy.RoundToMinutes,
		"overtime_policy.weekday_rate":                 r.OvertimePolicy.WeekdayRate,
		"overtime_policy.weekend_rate":                 r.OvertimePolicy.WeekendRate,
		"overtime_policy.holiday_rate":                 r.OvertimePolicy.HolidayRate,
		"leave_policy.annual_leave_days":               r.LeavePolicy.AnnualLeaveDays,
		"salary_policy.workdays_per_month":             r.SalaryPolicy.WorkdaysPerMonth,
		"salary_policy.hours_per_day":                  r.SalaryPolicy.HoursPerDay,
	}
	for field, value := range numbers {
		if !value.IsSet() {
			continue
		}
		f, err := value.Float()
		if err != nil {
			errs = errs.Add(field, "must be a number")
		} else if f < 0 {
			errs = errs.Add(field, "must be non-negative")
		} else if f > MaxPolicyNumber {
			errs = errs.Add(field, "must not exceed 2147483647")
		}
	}

	return errs.OrNil()
}
