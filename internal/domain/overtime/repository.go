package overtime

import (
	"context"
)

type OvertimeRepository interface {
	Create(ctx context.Context, log OvertimeLog) (OvertimeLog, error)
	GetByID(ctx context.Context, id, companyID string) (OvertimeLog, error)

	// ExistsActiveOnDate reports whether a pending or approved log exists for user+date
	ExistsActiveOnDate(ctx context.Context, userID, date, companyID string) (bool, error)

	ListByUserID(ctx context.Context, userID, companyID string) ([]OvertimeLog, error)

	// ListApprovedBetween returns approved logs with from <= date <= to
	ListApprovedBetween(ctx context.Context, userID, from, to, companyID string) ([]OvertimeLog, error)

	UpdateStatus(ctx context.Context, log OvertimeLog) error
}
