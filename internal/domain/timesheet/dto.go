package timesheet

import (
	"strconv"

	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Period struct {
	Year  int `json:"year" validate:"gte=1970,lte=9999"`
	Month int `json:"month" validate:"gte=1,lte=12"`
}

// ParsePeriod reads ?year=&month= query values.
func ParsePeriod(year, month string) (Period, error) {
	var errs validator.ValidationErrors
	y, err := strconv.Atoi(year)
	if err != nil {
		errs = errs.Add("year", "must be an integer")
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		errs = errs.Add("month", "must be an integer")
	}
	if len(errs) > 0 {
		return Period{}, errs
	}

	p := Period{Year: y, Month: m}
	return p, p.Validate()
}

func (p *Period) Validate() error {
	return validator.Struct(p).OrNil()
}

type MonthDetailRequest struct {
	UserID string
	Period
}

type MonthSummaryRequest struct {
	Period
}

type SummaryRow struct {
	UserID           string          `json:"user_id"`
	FullName         string          `json:"full_name"`
	EmployeeCode     *string         `json:"employee_code,omitempty"`
	WorkingDays      int             `json:"working_days"`
	UnpaidDays       int             `json:"unpaid_days"`
	PenaltyMinutes   int             `json:"penalty_minutes"`
	OTWeekdayMinutes int             `json:"ot_weekday_minutes"`
	OTWeekendMinutes int             `json:"ot_weekend_minutes"`
	OTHolidayMinutes int             `json:"ot_holiday_minutes"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`
}

func NewSummaryRow(userID, fullName string, employeeCode *string, m MonthResult) SummaryRow {
	return SummaryRow{
		UserID:           userID,
		FullName:         fullName,
		EmployeeCode:     employeeCode,
		WorkingDays:      m.WorkingDays,
		UnpaidDays:       m.UnpaidDays,
		PenaltyMinutes:   m.PenaltyMinutes,
		OTWeekdayMinutes: m.OTWeekdayMinutes,
		OTWeekendMinutes: m.OTWeekendMinutes,
		OTHolidayMinutes: m.OTHolidayMinutes,
		GrossSalary:      m.GrossSalary,
		NetSalary:        m.NetSalary,
	}
}

type MonthSummaryResponse struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Employees       []SummaryRow    `json:"employees"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalUnpaidDays int             `json:"total_unpaid_days"`
	TotalOTMinutes  int             `json:"total_ot_minutes"`
}
