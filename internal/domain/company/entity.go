package company

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

type Company struct {
	ID               string
	Name             string
	Code             *string
	AttendanceConfig *AttendanceConfig
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NumericString holds a policy number the way the settings screen stores it: as
// text. It decodes from either a JSON string or a JSON number.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

// IsSet reports whether a value was supplied. Blank text counts as absent.
func (n NumericString) IsSet() bool {
	return strings.TrimSpace(string(n)) != ""
}

func (n NumericString) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
}

// AttendanceConfig is the raw attendance document owned by a company, persisted
// as JSONB. Resolve it into a typed policy before use.
type AttendanceConfig struct {
	WorkingHours   WorkingHours   `json:"working_hours"`
	LateRule       LateRule       `json:"late_rule"`
	EarlyLeaveRule EarlyLeaveRule `json:"early_leave_rule"`
	OvertimePolicy OvertimePolicy `json:"overtime_policy"`
	LeavePolicy    LeavePolicy    `json:"leave_policy"`
	SalaryPolicy   SalaryPolicy   `json:"salary_policy"`
}

type WorkingHours struct {
	StartTime       string   `json:"start_time,omitempty"`
	EndTime         string   `json:"end_time,omitempty"`
	BreakStart      string   `json:"break_start,omitempty"`
	BreakEnd        string   `json:"break_end,omitempty"`
	WorkingDays     []string `json:"working_days,omitempty"`
	CompanyHolidays []string `json:"company_holidays,omitempty"`
}

type LateRule struct {
	AllowMinutes           NumericString `json:"allow_minutes,omitempty"`
	DeductPerMinute        *bool         `json:"deduct_per_minute,omitempty"`
	UnitMinutes            NumericString `json:"unit_minutes,omitempty"`
	MaxLateAsAbsentMinutes NumericString `json:"max_late_as_absent_minutes,omitempty"`
}

// EarlyLeaveRule has no grace period, unlike LateRule.
type EarlyLeaveRule struct {
	DeductPerMinute         *bool         `json:"deduct_per_minute,omitempty"`
	UnitMinutes             NumericString `json:"unit_minutes,omitempty"`
	MaxEarlyAsAbsentMinutes NumericString `json:"max_early_as_absent_minutes,omitempty"`
}

type OvertimePolicy struct {
	MinOTMinutes   NumericString `json:"min_ot_minutes,omitempty"`
	RoundToMinutes NumericString `json:"round_to_minutes,omitempty"`
	WeekdayRate    NumericString `json:"weekday_rate,omitempty"`
	WeekendRate    NumericString `json:"weekend_rate,omitempty"`
	HolidayRate    NumericString `json:"holiday_rate,omitempty"`
}

type PaidLeaveType struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type LeavePolicy struct {
	AnnualLeaveDays NumericString   `json:"annual_leave_days,omitempty"`
	AllowHalfDay    *bool           `json:"allow_half_day,omitempty"`
	PaidLeaveTypes  []PaidLeaveType `json:"paid_leave_types,omitempty"`
}

type SalaryPolicy struct {
	WorkdaysPerMonth NumericString `json:"workdays_per_month,omitempty"`
	HoursPerDay      NumericString `json:"hours_per_day,omitempty"`
}

// Value implements driver.Valuer for database storage
func (c AttendanceConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for database retrieval
func (c *AttendanceConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("failed to scan AttendanceConfig: invalid type")
	}

	return json.Unmarshal(raw, c)
}
