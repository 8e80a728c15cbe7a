package leave

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// DayType maps to leave_day_type_enum in DB
type DayType string

const (
	DayTypeFull          DayType = "full"
	DayTypeHalfMorning   DayType = "half_morning"
	DayTypeHalfAfternoon DayType = "half_afternoon"
)

func (d DayType) IsHalf() bool {
	return d == DayTypeHalfMorning || d == DayTypeHalfAfternoon
}

// LeaveRequest entity. StartDate and EndDate are inclusive YYYY-MM-DD strings,
// which compare correctly as plain strings.
type LeaveRequest struct {
	ID        string
	UserID    string
	CompanyID string

	Type      LeaveType
	StartDate string
	EndDate   string
	DayType   DayType
	Reason    string

	Status     LeaveRequestStatus
	AdminNote  *string
	ApprovedBy *user.Snapshot
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the request still blocks its dates.
func (r LeaveRequest) IsActive() bool {
	return r.Status == LeaveRequestStatusPending || r.Status == LeaveRequestStatusApproved
}

func (r LeaveRequest) IsApproved() bool {
	return r.Status == LeaveRequestStatusApproved
}

// Covers reports whether date falls inside [StartDate, EndDate].
func (r LeaveRequest) Covers(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}
