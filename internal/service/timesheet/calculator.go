package timesheet

import (
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// monthIndex holds per-date lookups over the already loaded records.
type monthIndex struct {
	logs      map[string]*attendance.AttendanceLog
	overrides map[string]string
	leaves    []leave.LeaveRequest
	otHours   map[string][]float64
}

func buildIndex(in timesheet.Input) monthIndex {
	idx := monthIndex{
		logs:      make(map[string]*attendance.AttendanceLog, len(in.Logs)),
		overrides: make(map[string]string),
		otHours:   make(map[string][]float64),
	}

	// later entries win on duplicate keys
	for i := range in.Logs {
		idx.logs[in.Logs[i].Date] = &in.Logs[i]
	}
	for _, c := range in.Complaints {
		if c.Status == attendance.ComplaintStatusApproved {
			idx.overrides[c.OverrideKey()] = c.Time
		}
	}
	for _, l := range in.Leaves {
		if l.IsApproved() {
			idx.leaves = append(idx.leaves, l)
		}
	}
	for _, o := range in.Overtimes {
		if o.IsApproved() {
			idx.otHours[o.Date] = append(idx.otHours[o.Date], o.Hours)
		}
	}
	return idx
}

// leaveOn returns the first approved leave covering date.
func (idx monthIndex) leaveOn(date string) *leave.LeaveRequest {
	for i := range idx.leaves {
		if idx.leaves[i].Covers(date) {
			return &idx.leaves[i]
		}
	}
	return nil
}

// CalcMonth classifies every day of the month and folds the result into totals
// and a net salary. It performs no I/O.
func CalcMonth(in timesheet.Input) (timesheet.MonthResult, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 1 {
		return timesheet.MonthResult{}, timesheet.ErrInvalidPeriod
	}

	p, err := ResolvePolicy(in.Config)
	if err != nil {
		return timesheet.MonthResult{}, err
	}

	base := in.Salary
	salaryPerDay := p.SalaryPerDay(base)
	salaryPerMinute := p.SalaryPerMinute(base)
	idx := buildIndex(in)

	days := calendar.DaysInMonth(in.Year, in.Month)
	res := timesheet.MonthResult{
		Year:            in.Year,
		Month:           in.Month,
		BaseSalary:      base,
		SalaryPerDay:    salaryPerDay,
		SalaryPerMinute: salaryPerMinute,
		OTPayTotal:      decimal.Zero,
		Days:            make([]timesheet.DayDetail, 0, days),
	}

	for d := 1; d <= days; d++ {
		date := calendar.DateOf(in.Year, in.Month, d)
		checkIn, checkOut := EffectivePunches(date, idx.logs[date], idx.overrides)
		day := DayInput{Date: date, CheckIn: checkIn, CheckOut: checkOut, Leave: idx.leaveOn(date)}

		c, err := ClassifyDay(p, day)
		if err != nil {
			return timesheet.MonthResult{}, err
		}
		ot := EvaluateOvertime(p, RawOvertimeMinutes(idx.otHours[date]), c.IsHoliday, c.IsWorkingDay, salaryPerMinute)

		if c.CountsWorking {
			res.WorkingDays++
		}
		if c.CountsUnpaid {
			res.UnpaidDays++
		}
		res.LateMinutes += c.LatePenalty
		res.EarlyMinutes += c.EarlyPenalty

		switch ot.Bucket {
		case timesheet.OTBucketHoliday:
			res.OTHolidayMinutes += ot.Minutes
		case timesheet.OTBucketWeekend:
			res.OTWeekendMinutes += ot.Minutes
		case timesheet.OTBucketWeekday:
			res.OTWeekdayMinutes += ot.Minutes
		}
		res.OTPayTotal = res.OTPayTotal.Add(ot.Pay)

		detail := timesheet.DayDetail{
			Date:                date,
			Weekday:             weekdayOf(date),
			Type:                c.Type,
			CheckIn:             checkIn,
			CheckOut:            checkOut,
			LateMinutes:         c.LateMinutes,
			EarlyMinutes:        c.EarlyMinutes,
			LatePenaltyMinutes:  c.LatePenalty,
			EarlyPenaltyMinutes: c.EarlyPenalty,
			OTMinutes:           ot.Minutes,
			OTBucket:            ot.Bucket,
			OTRate:              ot.Rate,
			OTPay:               ot.Pay,
			IsOnlyOT:            ot.Minutes > 0 && !day.HasPunchPair() && day.Leave == nil,
		}
		if day.Leave != nil {
			lt := string(day.Leave.Type)
			detail.LeaveType = &lt
		}
		res.Days = append(res.Days, detail)
	}

	res.PenaltyMinutes = res.LateMinutes + res.EarlyMinutes
	res.DeductionUnpaid = decimal.NewFromInt(int64(res.UnpaidDays)).Mul(salaryPerDay)
	res.DeductionMinutes = decimal.NewFromInt(int64(res.PenaltyMinutes)).Mul(salaryPerMinute)
	res.GrossSalary = base.Add(res.OTPayTotal)
	res.NetSalary = roundHalfUp(base.Sub(res.DeductionUnpaid).Sub(res.DeductionMinutes).Add(res.OTPayTotal))

	return res, nil
}

// roundHalfUp rounds toward positive infinity on .5, matching floor(x + 0.5).
func roundHalfUp(x decimal.Decimal) decimal.Decimal {
	return x.Add(half).Floor()
}

func weekdayOf(date string) string {
	t, err := calendar.ParseDate(date)
	if err != nil {
		return ""
	}
	return string(calendar.WeekdayKey(t))
}
