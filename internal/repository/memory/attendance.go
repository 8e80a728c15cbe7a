package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu   sync.RWMutex
	logs map[string]attendance.AttendanceLog // keyed by id
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{logs: make(map[string]attendance.AttendanceLog)}
}

func (r *AttendanceRepository) GetByUserAndDate(_ context.Context, userID, date, companyID string) (attendance.AttendanceLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.logs {
		if l.UserID == userID && l.Date == date && l.CompanyID == companyID {
			return l, nil
		}
	}
	return attendance.AttendanceLog{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) Create(_ context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.logs {
		if l.UserID == log.UserID && l.Date == log.Date {
			return attendance.AttendanceLog{}, attendance.ErrAlreadyCheckedIn
		}
	}
	r.logs[log.ID] = log
	return log, nil
}

func (r *AttendanceRepository) Update(_ context.Context, log attendance.AttendanceLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.logs[log.ID]
	if !ok || existing.CompanyID != log.CompanyID {
		return attendance.ErrAttendanceNotFound
	}
	r.logs[log.ID] = log
	return nil
}

func (r *AttendanceRepository) ListByUserBetween(_ context.Context, userID, from, to, companyID string) ([]attendance.AttendanceLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.AttendanceLog
	for _, l := range r.logs {
		if l.UserID == userID && l.CompanyID == companyID && from <= l.Date && l.Date <= to {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type ComplaintRepository struct {
	mu         sync.RWMutex
	complaints []attendance.CheckinComplaint // insertion order
}

func NewComplaintRepository() *ComplaintRepository {
	return &ComplaintRepository{}
}

func (r *ComplaintRepository) Create(_ context.Context, c attendance.CheckinComplaint) (attendance.CheckinComplaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.complaints = append(r.complaints, c)
	return c, nil
}

func (r *ComplaintRepository) GetByID(_ context.Context, id, companyID string) (attendance.CheckinComplaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.complaints {
		if c.ID == id && c.CompanyID == companyID {
			return c, nil
		}
	}
	return attendance.CheckinComplaint{}, attendance.ErrComplaintNotFound
}

func (r *ComplaintRepository) ExistsPending(_ context.Context, userID, date string, action attendance.ComplaintAction, companyID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.complaints {
		if c.UserID == userID && c.Date == date && c.Action == action && c.CompanyID == companyID &&
			c.Status == attendance.ComplaintStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *ComplaintRepository) UpdateReview(_ context.Context, complaint attendance.CheckinComplaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.complaints {
		if c.ID == complaint.ID && c.CompanyID == complaint.CompanyID {
			r.complaints[i] = complaint
			return nil
		}
	}
	return attendance.ErrComplaintNotFound
}

// ListByUserBetween keeps insertion order so the newest approval wins downstream.
func (r *ComplaintRepository) ListByUserBetween(_ context.Context, userID, from, to, companyID string) ([]attendance.CheckinComplaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []attendance.CheckinComplaint
	for _, c := range r.complaints {
		if c.UserID == userID && c.CompanyID == companyID && from <= c.Date && c.Date <= to {
			out = append(out, c)
		}
	}
	return out, nil
}
