package overtime

import (
	"context"
)

type OvertimeService interface {
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	ApproveOvertime(ctx context.Context, req ReviewOvertimeRequest) (OvertimeResponse, error)
	RejectOvertime(ctx context.Context, req ReviewOvertimeRequest) (OvertimeResponse, error)
	GetMyOvertimes(ctx context.Context) ([]OvertimeResponse, error)
}
