package timesheet

import (
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

// DayType is the single classification each calendar date resolves to.
type DayType string

const (
	DayTypeOff         DayType = "off"
	DayTypeHoliday     DayType = "holiday"
	DayTypeWork        DayType = "work"
	DayTypePaidLeave   DayType = "paid_leave"
	DayTypeUnpaidLeave DayType = "unpaid_leave"
	DayTypeAbsent      DayType = "absent"
)

// OTBucket selects which overtime rate applies to a day.
type OTBucket string

const (
	OTBucketNone    OTBucket = ""
	OTBucketWeekday OTBucket = "weekday"
	OTBucketWeekend OTBucket = "weekend"
	OTBucketHoliday OTBucket = "holiday"
)

// Policy is the typed form of company.AttendanceConfig with every default applied.
// Clock values are minutes since midnight.
type Policy struct {
	StartMinutes      int
	EndMinutes        int
	BreakStartMinutes int
	BreakEndMinutes   int
	BreakMinutes      int
	WorkingDays       map[calendar.Weekday]bool
	Holidays          map[string]bool

	LateAllowMinutes     int
	LateDeductPerMinute  bool
	LateUnitMinutes      int
	MaxLateAsAbsent      int
	EarlyDeductPerMinute bool
	EarlyUnitMinutes     int
	MaxEarlyAsAbsent     int

	MinOTMinutes   int
	RoundToMinutes int
	WeekdayRate    decimal.Decimal
	WeekendRate    decimal.Decimal
	HolidayRate    decimal.Decimal

	AnnualLeaveDays int
	AllowHalfDay    bool

	WorkdaysPerMonth decimal.Decimal
	HoursPerDay      decimal.Decimal
}

func (p Policy) IsHoliday(date string) bool {
	return p.Holidays[date]
}

// IsWorkingWeekday checks the weekday only; holidays are not considered.
func (p Policy) IsWorkingWeekday(date string) (bool, error) {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return false, err
	}
	return p.WorkingDays[calendar.WeekdayKey(t)], nil
}

// SalaryPerDay is zero when workdays_per_month is not positive.
func (p Policy) SalaryPerDay(base decimal.Decimal) decimal.Decimal {
	if !p.WorkdaysPerMonth.IsPositive() {
		return decimal.Zero
	}
	return base.Div(p.WorkdaysPerMonth)
}

// SalaryPerMinute is zero when hours_per_day is not positive.
func (p Policy) SalaryPerMinute(base decimal.Decimal) decimal.Decimal {
	minutesPerDay := p.HoursPerDay.Mul(decimal.NewFromInt(60))
	if !minutesPerDay.IsPositive() {
		return decimal.Zero
	}
	return p.SalaryPerDay(base).Div(minutesPerDay)
}

// Input is everything one month calculation needs, fully loaded.
type Input struct {
	Salary      decimal.Decimal
	Config      *company.AttendanceConfig
	Logs        []attendance.AttendanceLog
	Complaints  []attendance.CheckinComplaint
	Leaves      []leave.LeaveRequest
	Overtimes   []overtime.OvertimeLog
	Year, Month int
}

// DayDetail is one row of the month breakdown.
type DayDetail struct {
	Date                string          `json:"date"`
	Weekday             string          `json:"weekday"`
	Type                DayType         `json:"type"`
	CheckIn             *string         `json:"check_in"`
	CheckOut            *string         `json:"check_out"`
	LateMinutes         int             `json:"late_minutes"`
	EarlyMinutes        int             `json:"early_minutes"`
	LatePenaltyMinutes  int             `json:"late_penalty_minutes"`
	EarlyPenaltyMinutes int             `json:"early_penalty_minutes"`
	OTMinutes           int             `json:"ot_minutes"`
	OTBucket            OTBucket        `json:"ot_bucket,omitempty"`
	OTRate              decimal.Decimal `json:"ot_rate"`
	OTPay               decimal.Decimal `json:"ot_pay"`
	LeaveType           *string         `json:"leave_type,omitempty"`
	IsOnlyOT            bool            `json:"is_only_ot"`
}

// MonthResult is computed on every request and never stored.
type MonthResult struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	WorkingDays      int             `json:"working_days"`
	UnpaidDays       int             `json:"unpaid_days"`
	LateMinutes      int             `json:"late_minutes"`
	EarlyMinutes     int             `json:"early_minutes"`
	PenaltyMinutes   int             `json:"penalty_minutes"`
	OTWeekdayMinutes int             `json:"ot_weekday_minutes"`
	OTWeekendMinutes int             `json:"ot_weekend_minutes"`
	OTHolidayMinutes int             `json:"ot_holiday_minutes"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	SalaryPerDay     decimal.Decimal `json:"salary_per_day"`
	SalaryPerMinute  decimal.Decimal `json:"salary_per_minute"`
	DeductionUnpaid  decimal.Decimal `json:"deduction_unpaid"`
	DeductionMinutes decimal.Decimal `json:"deduction_minutes"`
	OTPayTotal       decimal.Decimal `json:"ot_pay_total"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	Days             []DayDetail     `json:"days"`
}

// CountType returns how many days resolved to t.
func (m MonthResult) CountType(t DayType) int {
	n := 0
	for _, d := range m.Days {
		if d.Type == t {
			n++
		}
	}
	return n
}
