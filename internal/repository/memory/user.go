package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hrsaas/timesheet-backend/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

// Save inserts or replaces a user.
func (r *UserRepository) Save(u user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *UserRepository) GetByID(_ context.Context, id string, companyID string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok || !u.BelongsTo(companyID) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) ListActiveByCompanyID(_ context.Context, companyID string) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []user.User
	for _, u := range r.users {
		if u.IsActive && u.BelongsTo(companyID) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}
