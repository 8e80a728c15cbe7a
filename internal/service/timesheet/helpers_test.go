package timesheet

import (
	"testing"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// unitConfig rounds penalties to 15 minute units with a 5 minute late grace.
func unitConfig() *company.AttendanceConfig {
	return &company.AttendanceConfig{
		WorkingHours: company.WorkingHours{
			StartTime:  "08:00",
			EndTime:    "17:00",
			BreakStart: "12:00",
			BreakEnd:   "13:00",
		},
		LateRule: company.LateRule{
			AllowMinutes:           "5",
			DeductPerMinute:        boolPtr(false),
			UnitMinutes:            "15",
			MaxLateAsAbsentMinutes: "240",
		},
		EarlyLeaveRule: company.EarlyLeaveRule{
			DeductPerMinute:         boolPtr(false),
			UnitMinutes:             "15",
			MaxEarlyAsAbsentMinutes: "240",
		},
		OvertimePolicy: company.OvertimePolicy{
			MinOTMinutes:   "30",
			RoundToMinutes: "30",
		},
	}
}

func mustPolicy(t *testing.T, cfg *company.AttendanceConfig) timesheet.Policy {
	t.Helper()
	p, err := ResolvePolicy(cfg)
	require.NoError(t, err)
	return p
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
