package timesheet

import (
	"testing"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/pkg/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicy_Defaults(t *testing.T) {
	p := mustPolicy(t, &company.AttendanceConfig{})

	assert.Equal(t, 8*60, p.StartMinutes)
	assert.Equal(t, 17*60, p.EndMinutes)
	assert.Equal(t, 60, p.BreakMinutes)
	for _, d := range []calendar.Weekday{calendar.Monday, calendar.Tuesday, calendar.Wednesday, calendar.Thursday, calendar.Friday, calendar.Saturday} {
		assert.True(t, p.WorkingDays[d], d)
	}
	assert.False(t, p.WorkingDays[calendar.Sunday])
	assert.Empty(t, p.Holidays)

	assert.Equal(t, 5, p.LateAllowMinutes)
	assert.Equal(t, 15, p.LateUnitMinutes)
	assert.Equal(t, 15, p.EarlyUnitMinutes)
	assert.Equal(t, 240, p.MaxLateAsAbsent)
	assert.Equal(t, 240, p.MaxEarlyAsAbsent)
	assert.True(t, p.LateDeductPerMinute)
	assert.True(t, p.EarlyDeductPerMinute)

	assert.Equal(t, 30, p.MinOTMinutes)
	assert.Equal(t, 30, p.RoundToMinutes)
	assertDecimal(t, "1.5", p.WeekdayRate)
	assertDecimal(t, "2", p.WeekendRate)
	assertDecimal(t, "3", p.HolidayRate)

	assert.Equal(t, 12, p.AnnualLeaveDays)
	assert.True(t, p.AllowHalfDay)
	assertDecimal(t, "26", p.WorkdaysPerMonth)
	assertDecimal(t, "8", p.HoursPerDay)
}

func TestResolvePolicy_ParsesStrings(t *testing.T) {
	cfg := &company.AttendanceConfig{
		WorkingHours: company.WorkingHours{
			StartTime:       "09:00",
			EndTime:         "18:00",
			BreakStart:      "12:30",
			BreakEnd:        "13:15",
			WorkingDays:     []string{"mon", "tue", "wed", "thu", "fri"},
			CompanyHolidays: []string{"2024-05-01"},
		},
		LateRule:       company.LateRule{AllowMinutes: " 10 ", MaxLateAsAbsentMinutes: "120"},
		OvertimePolicy: company.OvertimePolicy{WeekdayRate: "1.25", HolidayRate: "4"},
		LeavePolicy:    company.LeavePolicy{AnnualLeaveDays: "14", AllowHalfDay: boolPtr(false)},
		SalaryPolicy:   company.SalaryPolicy{WorkdaysPerMonth: "22", HoursPerDay: "7.5"},
	}

	p := mustPolicy(t, cfg)
	assert.Equal(t, 9*60, p.StartMinutes)
	assert.Equal(t, 45, p.BreakMinutes)
	assert.False(t, p.WorkingDays[calendar.Saturday])
	assert.True(t, p.IsHoliday("2024-05-01"))
	assert.Equal(t, 10, p.LateAllowMinutes)
	assert.Equal(t, 120, p.MaxLateAsAbsent)
	assert.Equal(t, 240, p.MaxEarlyAsAbsent)
	assertDecimal(t, "1.25", p.WeekdayRate)
	assertDecimal(t, "2", p.WeekendRate)
	assertDecimal(t, "4", p.HolidayRate)
	assert.Equal(t, 14, p.AnnualLeaveDays)
	assert.False(t, p.AllowHalfDay)
	assertDecimal(t, "7.5", p.HoursPerDay)
}

func TestResolvePolicy_Errors(t *testing.T) {
	_, err := ResolvePolicy(nil)
	assert.ErrorIs(t, err, company.ErrAttendanceConfigMissing)

	_, err = ResolvePolicy(&company.AttendanceConfig{LateRule: company.LateRule{UnitMinutes: "fifteen"}})
	assert.ErrorIs(t, err, company.ErrInvalidAttendanceConfig)
	assert.Contains(t, err.Error(), "late_rule.unit_minutes")

	_, err = ResolvePolicy(&company.AttendanceConfig{OvertimePolicy: company.OvertimePolicy{WeekendRate: "x2"}})
	assert.ErrorIs(t, err, company.ErrInvalidAttendanceConfig)

	_, err = ResolvePolicy(&company.AttendanceConfig{WorkingHours: company.WorkingHours{StartTime: "8h"}})
	assert.ErrorIs(t, err, company.ErrInvalidAttendanceConfig)
	assert.ErrorIs(t, err, timesheet.ErrMalformedTime)
}

func TestResolvePolicy_RejectsOutOfRange(t *testing.T) {
	cases := []*company.AttendanceConfig{
		{LateRule: company.LateRule{MaxLateAsAbsentMinutes: "1e20"}},
		{EarlyLeaveRule: company.EarlyLeaveRule{UnitMinutes: "-1e12"}},
		{OvertimePolicy: company.OvertimePolicy{HolidayRate: "99999999999"}},
	}
	for _, cfg := range cases {
		_, err := ResolvePolicy(cfg)
		assert.ErrorIs(t, err, company.ErrInvalidAttendanceConfig)
		assert.Contains(t, err.Error(), "out of range")
	}

	p := mustPolicy(t, &company.AttendanceConfig{LateRule: company.LateRule{MaxLateAsAbsentMinutes: "2147483647"}})
	assert.Equal(t, 2147483647, p.MaxLateAsAbsent)
}

func TestResolvePolicy_NegativeBreakClamped(t *testing.T) {
	p := mustPolicy(t, &company.AttendanceConfig{WorkingHours: company.WorkingHours{BreakStart: "14:00", BreakEnd: "13:00"}})
	assert.Equal(t, 0, p.BreakMinutes)
}

func TestPolicy_SalaryRates(t *testing.T) {
	p := mustPolicy(t, &company.AttendanceConfig{})
	base := decimal.NewFromInt(2_496_000)
	assertDecimal(t, "96000", p.SalaryPerDay(base))
	assertDecimal(t, "200", p.SalaryPerMinute(base))

	zeroDays := mustPolicy(t, &company.AttendanceConfig{SalaryPolicy: company.SalaryPolicy{WorkdaysPerMonth: "0"}})
	assert.True(t, zeroDays.SalaryPerDay(base).IsZero())
	assert.True(t, zeroDays.SalaryPerMinute(base).IsZero())

	zeroHours := mustPolicy(t, &company.AttendanceConfig{SalaryPolicy: company.SalaryPolicy{HoursPerDay: "0"}})
	assertDecimal(t, "96000", zeroHours.SalaryPerDay(base))
	assert.True(t, zeroHours.SalaryPerMinute(base).IsZero())
}

func TestResolvePolicy_FromJSONNumbers(t *testing.T) {
	var cfg company.AttendanceConfig
	raw := []byte(`{"late_rule":{"allow_minutes":7,"unit_minutes":"10"},"salary_policy":{"hours_per_day":null}}`)
	require.NoError(t, cfg.Scan(raw))

	p := mustPolicy(t, &cfg)
	assert.Equal(t, 7, p.LateAllowMinutes)
	assert.Equal(t, 10, p.LateUnitMinutes)
	assertDecimal(t, "8", p.HoursPerDay)
}
