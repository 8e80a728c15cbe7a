package user

import (
	"context"
)

type UserRepository interface {
	// GetByID retrieves a user with company isolation
	GetByID(ctx context.Context, id string, companyID string) (User, error)

	// ListActiveByCompanyID returns every active user of the company, ordered by name
	ListActiveByCompanyID(ctx context.Context, companyID string) ([]User, error)
}
