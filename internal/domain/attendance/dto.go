package attendance

import (
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type PunchRequest struct {
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

func (r *PunchRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	CheckInImage  *string  `json:"check_in_image,omitempty"`
	CheckOutImage *string  `json:"check_out_image,omitempty"`
}

func NewAttendanceResponse(l AttendanceLog) AttendanceResponse {
	return AttendanceResponse{
		ID:            l.ID,
		UserID:        l.UserID,
		Date:          l.Date,
		CheckIn:       l.CheckIn,
		CheckOut:      l.CheckOut,
		TotalHours:    l.TotalHours,
		CheckInImage:  l.CheckInImage,
		CheckOutImage: l.CheckOutImage,
	}
}

// ========================================
// COMPLAINT DTOs
// ========================================

type CreateComplaintRequest struct {
	Date     string  `json:"date" validate:"required,date"`
	Action   string  `json:"action" validate:"required,oneof=check_in check_out"`
	Time     string  `json:"time" validate:"required,clock"`
	Reason   string  `json:"reason" validate:"required,max=1000"`
	Evidence *string `json:"evidence,omitempty" validate:"omitempty,url"`
}

func (r *CreateComplaintRequest) Validate() error {
	errs := validator.Struct(r)
	if r.Reason != "" && validator.IsEmpty(r.Reason) {
		errs = errs.Add("reason", "must not be blank")
	}
	return errs.OrNil()
}

type ReviewComplaintRequest struct {
	ID        string  `json:"-"`
	AdminNote *string `json:"admin_note,omitempty" validate:"omitempty,max=1000"`
}

func (r *ReviewComplaintRequest) Validate() error {
	return validator.Struct(r).OrNil()
}

type ComplaintResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Date       string         `json:"date"`
	Action     string         `json:"action"`
	Time       string         `json:"time"`
	Reason     string         `json:"reason"`
	Evidence   *string        `json:"evidence,omitempty"`
	Status     string         `json:"status"`
	AdminNote  *string        `json:"admin_note,omitempty"`
	ReviewedBy *user.Snapshot `json:"reviewed_by,omitempty"`
	ReviewedAt *string        `json:"reviewed_at,omitempty"`
}

func NewComplaintResponse(c CheckinComplaint) ComplaintResponse {
	var reviewedAt *string
	if c.ReviewedAt != nil {
		s := c.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &s
	}
	return ComplaintResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Date:       c.Date,
		Action:     string(c.Action),
		Time:       c.Time,
		Reason:     c.Reason,
		Evidence:   c.Evidence,
		Status:     string(c.Status),
		AdminNote:  c.AdminNote,
		ReviewedBy: c.ReviewedBy,
		ReviewedAt: reviewedAt,
	}
}
