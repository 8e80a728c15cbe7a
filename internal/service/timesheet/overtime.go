package timesheet

import (
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// OvertimeOutcome is the credited overtime for one date.
type OvertimeOutcome struct {
	Minutes int
	Bucket  timesheet.OTBucket
	Rate    decimal.Decimal
	Pay     decimal.Decimal
}

// RawOvertimeMinutes sums approved hours as minutes.
func RawOvertimeMinutes(hours []float64) decimal.Decimal {
	total := decimal.Zero
	for _, h := range hours {
		total = total.Add(decimal.NewFromFloat(h).Mul(minutesPerHour))
	}
	return total
}

// EvaluateOvertime applies the minimum threshold, floors to the rounding unit
// and picks the rate tier. Holiday beats weekend, weekend beats weekday.
func EvaluateOvertime(p timesheet.Policy, raw decimal.Decimal, isHoliday, isWorkingDay bool, salaryPerMinute decimal.Decimal) OvertimeOutcome {
	if !raw.IsPositive() || raw.LessThan(decimal.NewFromInt(int64(p.MinOTMinutes))) {
		return OvertimeOutcome{Rate: decimal.Zero, Pay: decimal.Zero}
	}

	var minutes int64
	if p.RoundToMinutes > 0 {
		unit := decimal.NewFromInt(int64(p.RoundToMinutes))
		minutes = raw.Div(unit).Floor().Mul(unit).IntPart()
	} else {
		minutes = raw.Floor().IntPart()
	}
	if minutes <= 0 {
		return OvertimeOutcome{Rate: decimal.Zero, Pay: decimal.Zero}
	}

	out := OvertimeOutcome{Minutes: int(minutes)}
	switch {
	case isHoliday:
		out.Bucket, out.Rate = timesheet.OTBucketHoliday, p.HolidayRate
	case !isWorkingDay:
		out.Bucket, out.Rate = timesheet.OTBucketWeekend, p.WeekendRate
	default:
		out.Bucket, out.Rate = timesheet.OTBucketWeekday, p.WeekdayRate
	}
	out.Pay = decimal.NewFromInt(minutes).Mul(salaryPerMinute).Mul(out.Rate)
	return out
}
