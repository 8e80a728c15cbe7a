package attendance

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
)

// AttendanceLog is the raw punch record for one user on one date.
// Approved complaints never rewrite it; they are layered on at calculation time.
type AttendanceLog struct {
	ID            string
	UserID        string
	CompanyID     string
	Date          string // YYYY-MM-DD, unique per user
	CheckIn       *string
	CheckOut      *string
	TotalHours    *float64
	CheckInImage  *string
	CheckOutImage *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ComplaintAction string

const (
	ActionCheckIn  ComplaintAction = "check_in"
	ActionCheckOut ComplaintAction = "check_out"
)

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "pending"
	ComplaintStatusApproved ComplaintStatus = "approved"
	ComplaintStatusRejected ComplaintStatus = "rejected"
)

// CheckinComplaint claims a corrected punch time for a date and action.
type CheckinComplaint struct {
	ID         string
	UserID     string
	CompanyID  string
	Date       string
	Action     ComplaintAction
	Time       string // HH:mm
	Reason     string
	Evidence   *string
	Status     ComplaintStatus
	AdminNote  *string
	ReviewedBy *user.Snapshot
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OverrideKey is the lookup key used when applying approved complaints.
func (c CheckinComplaint) OverrideKey() string {
	return OverrideKey(c.Date, c.Action)
}

func OverrideKey(date string, action ComplaintAction) string {
	return date + "_" + string(action)
}
