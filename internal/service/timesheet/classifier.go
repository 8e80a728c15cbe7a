package timesheet

import (
	"fmt"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
)

// DayInput is what the classifier knows about one date after overrides are merged.
type DayInput struct {
	Date     string
	CheckIn  *string
	CheckOut *string
	Leave    *leave.LeaveRequest
}

func (d DayInput) HasPunchPair() bool {
	return d.CheckIn != nil && d.CheckOut != nil
}

// DayClassification is the outcome for one date. CountsWorking and CountsUnpaid
// are mutually exclusive; off and holiday days set neither.
type DayClassification struct {
	Type          timesheet.DayType
	IsHoliday     bool
	IsWorkingDay  bool
	LateMinutes   int
	EarlyMinutes  int
	LatePenalty   int
	EarlyPenalty  int
	CountsWorking bool
	CountsUnpaid  bool
}

// IsOff reports a day outside the regular schedule.
func (c DayClassification) IsOff() bool {
	return !c.IsWorkingDay || c.IsHoliday
}

// ClassifyDay resolves a date to exactly one day type.
func ClassifyDay(p timesheet.Policy, in DayInput) (DayClassification, error) {
	isWorkingDay, err := p.IsWorkingWeekday(in.Date)
	if err != nil {
		return DayClassification{}, err
	}

	c := DayClassification{
		IsHoliday:    p.IsHoliday(in.Date),
		IsWorkingDay: isWorkingDay,
	}

	if c.IsOff() {
		c.Type = timesheet.DayTypeOff
		if c.IsHoliday {
			c.Type = timesheet.DayTypeHoliday
		}
		return c, nil
	}

	if in.Leave != nil {
		if in.Leave.Type == leave.LeaveTypeUnpaid {
			c.Type = timesheet.DayTypeUnpaidLeave
			c.CountsUnpaid = true
		} else {
			c.Type = timesheet.DayTypePaidLeave
			c.CountsWorking = true
		}
		return c, nil
	}

	if !in.HasPunchPair() {
		c.Type = timesheet.DayTypeAbsent
		c.CountsUnpaid = true
		return c, nil
	}

	inMinutes, err := calendar.ParseClock(*in.CheckIn)
	if err != nil {
		return DayClassification{}, fmt.Errorf("%s check_in %q: %w", in.Date, *in.CheckIn, timesheet.ErrMalformedTime)
	}
	outMinutes, err := calendar.ParseClock(*in.CheckOut)
	if err != nil {
		return DayClassification{}, fmt.Errorf("%s check_out %q: %w", in.Date, *in.CheckOut, timesheet.ErrMalformedTime)
	}

	late := max(0, inMinutes-p.StartMinutes)
	// grace zeroes late minutes within the allowance; past it nothing is subtracted
	if late <= p.LateAllowMinutes {
		late = 0
	}
	// early leave has no grace period
	early := max(0, p.EndMinutes-outMinutes)

	if late >= p.MaxLateAsAbsent || early >= p.MaxEarlyAsAbsent {
		c.Type = timesheet.DayTypeAbsent
		c.CountsUnpaid = true
		return c, nil
	}

	c.Type = timesheet.DayTypeWork
	c.CountsWorking = true
	c.LateMinutes = late
	c.EarlyMinutes = early
	c.LatePenalty = PenaltyMinutes(late, p.LateDeductPerMinute, p.LateUnitMinutes)
	c.EarlyPenalty = PenaltyMinutes(early, p.EarlyDeductPerMinute, p.EarlyUnitMinutes)
	return c, nil
}

// PenaltyMinutes charges raw minutes, or rounds them up to a whole unit.
func PenaltyMinutes(raw int, deductPerMinute bool, unit int) int {
	if raw <= 0 {
		return 0
	}
	if deductPerMinute || unit <= 0 {
		return raw
	}
	return (raw + unit - 1) / unit * unit
}

// EffectivePunches prefers an approved complaint's time over the raw log field.
// overrides is keyed by attendance.OverrideKey.
func EffectivePunches(date string, log *attendance.AttendanceLog, overrides map[string]string) (checkIn, checkOut *string) {
	if log != nil {
		checkIn = log.CheckIn
		checkOut = log.CheckOut
	}
	if t, ok := overrides[attendance.OverrideKey(date, attendance.ActionCheckIn)]; ok {
		checkIn = &t
	}
	if t, ok := overrides[attendance.OverrideKey(date, attendance.ActionCheckOut)]; ok {
		checkOut = &t
	}
	return checkIn, checkOut
}
