package company

import (
	"context"
)

type CompanyService interface {
	GetMyCompany(ctx context.Context) (CompanyResponse, error)
	UpdateAttendanceConfig(ctx context.Context, req UpdateAttendanceConfigRequest) (CompanyResponse, error)
}
