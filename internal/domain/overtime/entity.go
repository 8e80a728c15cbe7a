package overtime

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
)

type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

type OvertimeLog struct {
	ID         string
	UserID     string
	CompanyID  string
	Date       string
	StartTime  *string
	Hours      float64
	Reason     string
	Status     OvertimeStatus
	AdminNote  *string
	ApprovedBy *user.Snapshot
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o OvertimeLog) IsApproved() bool {
	return o.Status == OvertimeStatusApproved
}
