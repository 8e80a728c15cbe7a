// Package calendar holds the date helpers shared by the timesheet engine and the
// leave checks. Dates travel as "YYYY-MM-DD" strings and clock times as "HH:mm";
// everything here is evaluated in UTC.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidClock = errors.New("invalid time, expected HH:mm")
)

// Weekday is the lowercase three letter key used in working_days.
type Weekday string

const (
	Sunday    Weekday = "sun"
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
)

// indexed by time.Weekday (Sunday=0)
var weekdayKeys = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// AllWeekdays lists the keys Monday first, the order the settings screen uses.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (w Weekday) IsValid() bool {
	for _, k := range weekdayKeys {
		if k == w {
			return true
		}
	}
	return false
}

// ParseDate parses s as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func ToDateString(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func WeekdayKey(t time.Time) Weekday {
	return weekdayKeys[t.UTC().Weekday()]
}

// EnumerateInclusive returns every date from start to end, ascending.
// The result is empty when end is before start.
func EnumerateInclusive(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return nil, err
	}

	dates := []string{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, ToDateString(d))
	}
	return dates, nil
}

// DaysInMonth uses day zero of the following month, which normalizes to the
// last day of month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last date of the month as strings.
func MonthRange(year, month int) (first, last string) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return ToDateString(start), ToDateString(end)
}

// DateOf builds the date string for a day of the month.
func DateOf(year, month, day int) string {
	return ToDateString(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// ParseClock converts "HH:mm" (24h) into minutes since midnight.
// A trailing ":ss" component is accepted and ignored.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return h*60 + m, nil
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
