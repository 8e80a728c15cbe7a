package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
)

type OvertimeRepository struct {
	mu   sync.RWMutex
	logs map[string]overtime.OvertimeLog
}

func NewOvertimeRepository() *OvertimeRepository {
	return &OvertimeRepository{logs: make(map[string]overtime.OvertimeLog)}
}

func (r *OvertimeRepository) Create(_ context.Context, log overtime.OvertimeLog) (overtime.OvertimeLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[log.ID] = log
	return log, nil
}

func (r *OvertimeRepository) GetByID(_ context.Context, id, companyID string) (overtime.OvertimeLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.logs[id]
	if !ok || l.CompanyID != companyID {
		return overtime.OvertimeLog{}, overtime.ErrOvertimeNotFound
	}
	return l, nil
}

func (r *OvertimeRepository) ExistsActiveOnDate(_ context.Context, userID, date, companyID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.logs {
		if l.UserID == userID && l.Date == date && l.CompanyID == companyID &&
			(l.Status == overtime.OvertimeStatusPending || l.Status == overtime.OvertimeStatusApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (r *OvertimeRepository) ListByUserID(_ context.Context, userID, companyID string) ([]overtime.OvertimeLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []overtime.OvertimeLog
	for _, l := range r.logs {
		if l.UserID == userID && l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *OvertimeRepository) ListApprovedBetween(_ context.Context, userID, from, to, companyID string) ([]overtime.OvertimeLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []overtime.OvertimeLog
	for _, l := range r.logs {
		if l.UserID == userID && l.CompanyID == companyID && l.IsApproved() && from <= l.Date && l.Date <= to {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *OvertimeRepository) UpdateStatus(_ context.Context, log overtime.OvertimeLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.logs[log.ID]
	if !ok || existing.CompanyID != log.CompanyID {
		return overtime.ErrOvertimeNotFound
	}
	existing.Status = log.Status
	existing.AdminNote = log.AdminNote
	existing.ApprovedBy = log.ApprovedBy
	existing.ApprovedAt = log.ApprovedAt
	existing.UpdatedAt = log.UpdatedAt
	r.logs[log.ID] = existing
	return nil
}
