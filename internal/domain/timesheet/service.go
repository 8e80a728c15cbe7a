package timesheet

import (
	"context"
)

type TimesheetService interface {
	// GetMonthDetail is allowed for the user themselves or an admin of the same company
	GetMonthDetail(ctx context.Context, req MonthDetailRequest) (MonthResult, error)

	// GetMonthSummary calculates every active user of the admin's company
	GetMonthSummary(ctx context.Context, req MonthSummaryRequest) (MonthSummaryResponse, error)
}
