package overtime

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
)

type CreateOvertimeRequest struct {
	Date      string  `json:"date" validate:"required,date"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,clock"`
	Hours     float64 `json:"hours" validate:"gt=0,lte=24"`
	Reason    string  `json:"reason" validate:"max=1000"`
}

func (r *CreateOvertimeRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type ReviewOvertimeRequest struct {
	ID        string  `json:"-"`
	AdminNote *string `json:"admin_note,omitempty" validate:"omitempty,max=1000"`
}

func (r *ReviewOvertimeRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type OvertimeResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Date       string         `json:"date"`
	StartTime  *string        `json:"start_time,omitempty"`
	Hours      float64        `json:"hours"`
	Reason     string         `json:"reason"`
	Status     string         `json:"status"`
	AdminNote  *string        `json:"admin_note,omitempty"`
	ApprovedBy *user.Snapshot `json:"approved_by,omitempty"`
	ApprovedAt *string        `json:"approved_at,omitempty"`
}

func NewOvertimeResponse(o OvertimeLog) OvertimeResponse {
	var approvedAt *string
	if o.ApprovedAt != nil {
		s := o.ApprovedAt.Format(time.RFC3339)
		approvedAt = &s
	}
	return OvertimeResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		Date:       o.Date,
		StartTime:  o.StartTime,
		Hours:      o.Hours,
		Reason:     o.Reason,
		Status:     string(o.Status),
		AdminNote:  o.AdminNote,
		ApprovedBy: o.ApprovedBy,
		ApprovedAt: approvedAt,
	}
}
