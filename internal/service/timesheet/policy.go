package timesheet

import (
	"fmt"
	"math"
	"strings"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// Defaults applied when a config field is absent.
const (
	defaultStartTime  = "08:00"
	defaultEndTime    = "17:00"
	defaultBreakStart = "12:00"
	defaultBreakEnd   = "13:00"

	defaultAllowMinutes     = 5
	defaultUnitMinutes      = 15
	defaultMaxAsAbsent      = 240
	defaultMinOTMinutes     = 30
	defaultRoundToMinutes   = 30
	defaultAnnualLeaveDays  = 12
	defaultWorkdaysPerMonth = 26
	defaultHoursPerDay      = 8
)

var (
	defaultWorkingDays = []calendar.Weekday{
		calendar.Monday, calendar.Tuesday, calendar.Wednesday,
		calendar.Thursday, calendar.Friday, calendar.Saturday,
	}

	defaultWeekdayRate = decimal.NewFromFloat(1.5)
	defaultWeekendRate = decimal.NewFromInt(2)
	defaultHolidayRate = decimal.NewFromInt(3)
)

// ResolvePolicy parses every string-typed field of cfg once and fills defaults.
// A nil cfg means the company was never configured.
func ResolvePolicy(cfg *company.AttendanceConfig) (timesheet.Policy, error) {
	if cfg == nil {
		return timesheet.Policy{}, company.ErrAttendanceConfigMissing
	}

	var (
		p   timesheet.Policy
		err error
	)

	wh := cfg.WorkingHours
	if p.StartMinutes, err = clockOr(wh.StartTime, defaultStartTime, "working_hours.start_time"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.EndMinutes, err = clockOr(wh.EndTime, defaultEndTime, "working_hours.end_time"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.BreakStartMinutes, err = clockOr(wh.BreakStart, defaultBreakStart, "working_hours.break_start"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.BreakEndMinutes, err = clockOr(wh.BreakEnd, defaultBreakEnd, "working_hours.break_end"); err != nil {
		return timesheet.Policy{}, err
	}
	p.BreakMinutes = max(0, p.BreakEndMinutes-p.BreakStartMinutes)

	p.WorkingDays = make(map[calendar.Weekday]bool, 7)
	if len(wh.WorkingDays) == 0 {
		for _, d := range defaultWorkingDays {
			p.WorkingDays[d] = true
		}
	} else {
		for _, d := range wh.WorkingDays {
			p.WorkingDays[calendar.Weekday(d)] = true
		}
	}

	p.Holidays = make(map[string]bool, len(wh.CompanyHolidays))
	for _, d := range wh.CompanyHolidays {
		p.Holidays[d] = true
	}

	late := cfg.LateRule
	p.LateDeductPerMinute = boolOr(late.DeductPerMinute, true)
	if p.LateAllowMinutes, err = minutesOr(late.AllowMinutes, defaultAllowMinutes, "late_rule.allow_minutes"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.LateUnitMinutes, err = minutesOr(late.UnitMinutes, defaultUnitMinutes, "late_rule.unit_minutes"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.MaxLateAsAbsent, err = minutesOr(late.MaxLateAsAbsentMinutes, defaultMaxAsAbsent, "late_rule.max_late_as_absent_minutes"); err != nil {
		return timesheet.Policy{}, err
	}

	early := cfg.EarlyLeaveRule
	p.EarlyDeductPerMinute = boolOr(early.DeductPerMinute, true)
	if p.EarlyUnitMinutes, err = minutesOr(early.UnitMinutes, defaultUnitMinutes, "early_leave_rule.unit_minutes"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.MaxEarlyAsAbsent, err = minutesOr(early.MaxEarlyAsAbsentMinutes, defaultMaxAsAbsent, "early_leave_rule.max_early_as_absent_minutes"); err != nil {
		return timesheet.Policy{}, err
	}

	ot := cfg.OvertimePolicy
	if p.MinOTMinutes, err = minutesOr(ot.MinOTMinutes, defaultMinOTMinutes, "overtime_policy.min_ot_minutes"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.RoundToMinutes, err = minutesOr(ot.RoundToMinutes, defaultRoundToMinutes, "overtime_policy.round_to_minutes"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.WeekdayRate, err = decimalOr(ot.WeekdayRate, defaultWeekdayRate, "overtime_policy.weekday_rate"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.WeekendRate, err = decimalOr(ot.WeekendRate, defaultWeekendRate, "overtime_policy.weekend_rate"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.HolidayRate, err = decimalOr(ot.HolidayRate, defaultHolidayRate, "overtime_policy.holiday_rate"); err != nil {
		return timesheet.Policy{}, err
	}

	lp := cfg.LeavePolicy
	p.AllowHalfDay = boolOr(lp.AllowHalfDay, true)
	if p.AnnualLeaveDays, err = minutesOr(lp.AnnualLeaveDays, defaultAnnualLeaveDays, "leave_policy.annual_leave_days"); err != nil {
		return timesheet.Policy{}, err
	}

	sp := cfg.SalaryPolicy
	if p.WorkdaysPerMonth, err = decimalOr(sp.WorkdaysPerMonth, decimal.NewFromInt(defaultWorkdaysPerMonth), "salary_policy.workdays_per_month"); err != nil {
		return timesheet.Policy{}, err
	}
	if p.HoursPerDay, err = decimalOr(sp.HoursPerDay, decimal.NewFromInt(defaultHoursPerDay), "salary_policy.hours_per_day"); err != nil {
		return timesheet.Policy{}, err
	}

	return p, nil
}

func clockOr(value, fallback, field string) (int, error) {
	if value == "" {
		value = fallback
	}
	m, err := calendar.ParseClock(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %w", company.ErrInvalidAttendanceConfig, field, timesheet.ErrMalformedTime)
	}
	return m, nil
}

// minutesOr truncates fractional values to whole units.
func minutesOr(value company.NumericString, fallback int, field string) (int, error) {
	if !value.IsSet() {
		return fallback, nil
	}
	f, err := value.Float()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s is not a number", company.ErrInvalidAttendanceConfig, field)
	}
	if math.Abs(f) > company.MaxPolicyNumber {
		return 0, fmt.Errorf("%w: %s is out of range", company.ErrInvalidAttendanceConfig, field)
	}
	return int(f), nil
}

func decimalOr(value company.NumericString, fallback decimal.Decimal, field string) (decimal.Decimal, error) {
	if !value.IsSet() {
		return fallback, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(string(value)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s is not a number", company.ErrInvalidAttendanceConfig, field)
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(company.MaxPolicyNumber)) {
		return decimal.Zero, fmt.Errorf("%w: %s is out of range", company.ErrInvalidAttendanceConfig, field)
	}
	return d, nil
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
