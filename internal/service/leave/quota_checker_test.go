package leave

import (
	"testing"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	timesheetService "github.com/hrsaas/timesheet-backend/internal/service/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy(t *testing.T, mutate ...func(*company.AttendanceConfig)) timesheet.Policy {
	t.Helper()
	cfg := &company.AttendanceConfig{}
	for _, m := range mutate {
		m(cfg)
	}
	p, err := timesheetService.ResolvePolicy(cfg)
	require.NoError(t, err)
	return p
}

func request(typ leave.LeaveType, status leave.LeaveRequestStatus, start, end string) leave.LeaveRequest {
	return leave.LeaveRequest{Type: typ, Status: status, StartDate: start, EndDate: end, DayType: leave.DayTypeFull}
}

func TestHasOverlap(t *testing.T) {
	existing := []leave.LeaveRequest{
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved, "2024-03-10", "2024-03-12"),
		request(leave.LeaveTypeSick, leave.LeaveRequestStatusPending, "2024-03-20", "2024-03-20"),
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusRejected, "2024-03-25", "2024-03-28"),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"touches first day", "2024-03-08", "2024-03-10", true},
		{"touches last day", "2024-03-12", "2024-03-15", true},
		{"inside", "2024-03-11", "2024-03-11", true},
		{"encloses", "2024-03-01", "2024-03-31", true},
		{"pending counts", "2024-03-20", "2024-03-21", true},
		{"adjacent before", "2024-03-07", "2024-03-09", false},
		{"adjacent after", "2024-03-13", "2024-03-19", false},
		{"rejected is ignored", "2024-03-26", "2024-03-27", false},
		{"empty range", "2024-03-12", "2024-03-10", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasOverlap(existing, tt.start, tt.end))
		})
	}
}

func TestHasOverlap_Symmetric(t *testing.T) {
	ranges := [][2]string{
		{"2024-01-01", "2024-01-05"},
		{"2024-01-05", "2024-01-09"},
		{"2024-01-06", "2024-01-06"},
		{"2024-01-10", "2024-01-20"},
		{"2023-12-25", "2024-01-02"},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			ra := request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved, a[0], a[1])
			rb := request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved, b[0], b[1])
			assert.Equal(t,
				HasOverlap([]leave.LeaveRequest{rb}, a[0], a[1]),
				HasOverlap([]leave.LeaveRequest{ra}, b[0], b[1]),
				"%v vs %v", a, b)
		}
	}
}

func TestCountWorkingDays(t *testing.T) {
	p := defaultPolicy(t, func(c *company.AttendanceConfig) {
		c.WorkingHours.CompanyHolidays = []string{"2024-03-06"}
	})

	// Mon 03-04 to Sun 03-10: six working weekdays minus one holiday
	n, err := CountWorkingDays([]string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"}, p)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	fiveDay := defaultPolicy(t, func(c *company.AttendanceConfig) {
		c.WorkingHours.WorkingDays = []string{"mon", "tue", "wed", "thu", "fri"}
	})
	n, err = RequestWorkingDays(request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, "2024-03-04", "2024-03-10"), fiveDay)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = CountWorkingDays([]string{"2024-13-01"}, p)
	assert.Error(t, err)
}

func TestSumApprovedAnnualDays(t *testing.T) {
	p := defaultPolicy(t)
	requests := []leave.LeaveRequest{
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved, "2024-01-01", "2024-01-11"), // 10 working days
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, "2024-02-01", "2024-02-02"),
		request(leave.LeaveTypeSick, leave.LeaveRequestStatusApproved, "2024-02-05", "2024-02-06"),
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusRejected, "2024-02-12", "2024-02-13"),
	}

	used, err := SumApprovedAnnualDays(requests, p)
	require.NoError(t, err)
	assert.Equal(t, 10, used)
}

func TestValidateNewRequest_AnnualQuota(t *testing.T) {
	p := defaultPolicy(t, func(c *company.AttendanceConfig) {
		c.LeavePolicy.AnnualLeaveDays = "12"
	})
	existing := []leave.LeaveRequest{
		request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusApproved, "2024-01-01", "2024-01-11"),
	}

	_, err := ValidateNewRequest(p, existing, request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, "2024-02-05", "2024-02-07"))
	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)

	n, err := ValidateNewRequest(p, existing, request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, "2024-02-05", "2024-02-06"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// quota applies to annual leave only
	n, err = ValidateNewRequest(p, existing, request(leave.LeaveTypeSick, leave.LeaveRequestStatusPending, "2024-02-05", "2024-02-07"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestValidateNewRequest_Rejections(t *testing.T) {
	p := defaultPolicy(t)
	noHalfDay := defaultPolicy(t, func(c *company.AttendanceConfig) {
		allow := false
		c.LeavePolicy.AllowHalfDay = &allow
	})
	existing := []leave.LeaveRequest{
		request(leave.LeaveTypeSick, leave.LeaveRequestStatusPending, "2024-03-11", "2024-03-12"),
	}

	half := func(start, end string) leave.LeaveRequest {
		r := request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, start, end)
		r.DayType = leave.DayTypeHalfMorning
		return r
	}

	tests := []struct {
		name   string
		policy timesheet.Policy
		req    leave.LeaveRequest
		want   error
	}{
		{"end before start", p, request(leave.LeaveTypeAnnual, leave.LeaveRequestStatusPending, "2024-03-05", "2024-03-04"), leave.ErrInvalidDateRange},
		{"overlap", p, request(leave.LeaveTypeUnpaid, leave.LeaveRequestStatusPending, "2024-03-12", "2024-03-14"), leave.ErrOverlappingLeave},
		{"only a sunday", p, request(leave.LeaveTypeUnpaid, leave.LeaveRequestStatusPending, "2024-03-10", "2024-03-10"), leave.ErrNoWorkingDays},
		{"half day disabled", noHalfDay, half("2024-03-05", "2024-03-05"), leave.ErrHalfDayNotAllowed},
		{"half day over two dates", p, half("2024-03-05", "2024-03-06"), leave.ErrHalfDayNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateNewRequest(tt.policy, existing, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	n, err := ValidateNewRequest(p, existing, half("2024-03-05", "2024-03-05"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
