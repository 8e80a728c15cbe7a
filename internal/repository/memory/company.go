package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
)

type CompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]company.Company
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{companies: make(map[string]company.Company)}
}

// Save inserts or replaces a company.
func (r *CompanyRepository) Save(c company.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[c.ID] = c
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (company.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (r *CompanyRepository) UpdateAttendanceConfig(_ context.Context, id string, cfg company.AttendanceConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	c.AttendanceConfig = &cfg
	c.UpdatedAt = time.Now()
	r.companies[id] = c
	return nil
}
