package timesheet

import (
	"testing"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRawOvertimeMinutes(t *testing.T) {
	assertDecimal(t, "0", RawOvertimeMinutes(nil))
	assertDecimal(t, "24", RawOvertimeMinutes([]float64{0.4}))
	assertDecimal(t, "54", RawOvertimeMinutes([]float64{0.9}))
	assertDecimal(t, "90", RawOvertimeMinutes([]float64{0.5, 1}))
}

func TestEvaluateOvertime_ThresholdAndRounding(t *testing.T) {
	p := mustPolicy(t, unitConfig())
	perMinute := decimal.NewFromInt(200)

	tests := []struct {
		name  string
		hours []float64
		want  int
	}{
		{"below minimum earns nothing", []float64{0.4}, 0},
		{"floors to the rounding unit", []float64{0.9}, 30},
		{"exact minimum", []float64{0.5}, 30},
		{"several logs summed", []float64{0.5, 0.75}, 60},
		{"none", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := EvaluateOvertime(p, RawOvertimeMinutes(tt.hours), false, true, perMinute)
			assert.Equal(t, tt.want, out.Minutes)
			if tt.want == 0 {
				assert.Equal(t, timesheet.OTBucketNone, out.Bucket)
				assert.True(t, out.Pay.IsZero())
			}
		})
	}
}

func TestEvaluateOvertime_RateTiers(t *testing.T) {
	p := mustPolicy(t, unitConfig())
	perMinute := decimal.NewFromInt(200)
	raw := RawOvertimeMinutes([]float64{1})

	weekday := EvaluateOvertime(p, raw, false, true, perMinute)
	assert.Equal(t, timesheet.OTBucketWeekday, weekday.Bucket)
	assertDecimal(t, "1.5", weekday.Rate)
	assertDecimal(t, "18000", weekday.Pay)

	weekend := EvaluateOvertime(p, raw, false, false, perMinute)
	assert.Equal(t, timesheet.OTBucketWeekend, weekend.Bucket)
	assertDecimal(t, "24000", weekend.Pay)

	// a holiday on a non working weekday still pays the holiday rate
	holiday := EvaluateOvertime(p, raw, true, false, perMinute)
	assert.Equal(t, timesheet.OTBucketHoliday, holiday.Bucket)
	assertDecimal(t, "3", holiday.Rate)
	assertDecimal(t, "36000", holiday.Pay)
}

func TestEvaluateOvertime_NoRoundingUnit(t *testing.T) {
	cfg := unitConfig()
	cfg.OvertimePolicy = company.OvertimePolicy{MinOTMinutes: "0", RoundToMinutes: "0"}
	p := mustPolicy(t, cfg)

	out := EvaluateOvertime(p, RawOvertimeMinutes([]float64{0.41}), false, true, decimal.Zero)
	assert.Equal(t, 24, out.Minutes)
	assert.True(t, out.Pay.IsZero())
}
