package leave

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateLeaveRequest struct {
	Type      string `json:"type" validate:"required,oneof=annual sick unpaid"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date" validate:"required,date"`
	DayType   string `json:"day_type" validate:"omitempty,oneof=full half_morning half_afternoon"`
	Reason    string `json:"reason" validate:"max=1000"`
}

func (r *CreateLeaveRequest) Validate() error {
	errs := validator.Struct(r)
	if errs == nil && r.EndDate < r.StartDate {
		errs = errs.Add("end_date", "must not be before start_date")
	}
	return errs.OrNil()
}

// DayTypeOrDefault treats an omitted day_type as a full day.
func (r *CreateLeaveRequest) DayTypeOrDefault() DayType {
	if r.DayType == "" {
		return DayTypeFull
	}
	return DayType(r.DayType)
}

type ReviewLeaveRequest struct {
	ID        string  `json:"-"`
	AdminNote *string `json:"admin_note,omitempty" validate:"omitempty,max=1000"`
}

func (r *ReviewLeaveRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

// ========================================
// RESPONSE DTOs
// ========================================

type LeaveRequestResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Type        string         `json:"type"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	DayType     string         `json:"day_type"`
	Reason      string         `json:"reason"`
	Status      string         `json:"status"`
	AdminNote   *string        `json:"admin_note,omitempty"`
	ApprovedBy  *user.Snapshot `json:"approved_by,omitempty"`
	ApprovedAt  *string        `json:"approved_at,omitempty"`
	WorkingDays int            `json:"working_days"`
	CreatedAt   string         `json:"created_at"`
}

func NewLeaveRequestResponse(r LeaveRequest, workingDays int) LeaveRequestResponse {
	var approvedAt *string
	if r.ApprovedAt != nil {
		s := r.ApprovedAt.Format(time.RFC3339)
		approvedAt = &s
	}
	return LeaveRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        string(r.Type),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		DayType:     string(r.DayType),
		Reason:      r.Reason,
		Status:      string(r.Status),
		AdminNote:   r.AdminNote,
		ApprovedBy:  r.ApprovedBy,
		ApprovedAt:  approvedAt,
		WorkingDays: workingDays,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	AnnualLeaveDays int `json:"annual_leave_days"`
	Used            int `json:"used"`
	Remaining       int `json:"remaining"`
}
