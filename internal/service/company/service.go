package company

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	timesheetService "github.com/hrsaas/timesheet-backend/internal/service/timesheet"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
	logger      *slog.Logger
}

func NewCompanyService(companyRepo company.CompanyRepository, logger *slog.Logger) company.CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// GetMyCompany implements company.CompanyService.
func (s *CompanyServiceImpl) GetMyCompany(ctx context.Context) (company.CompanyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	comp, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.CompanyResponse{}, err
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return toResponse(comp), nil
}

// UpdateAttendanceConfig replaces the whole attendance document. The document
// is resolved once before saving so a broken config never reaches the engine.
func (s *CompanyServiceImpl) UpdateAttendanceConfig(ctx context.Context, req company.UpdateAttendanceConfigRequest) (company.CompanyResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if !claims.IsAdmin() {
		return company.CompanyResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	if _, err := timesheetService.ResolvePolicy(&req.AttendanceConfig); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.companyRepo.UpdateAttendanceConfig(ctx, claims.CompanyID, req.AttendanceConfig); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.CompanyResponse{}, err
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to update attendance config: %w", err)
	}

	s.logger.InfoContext(ctx, "attendance config updated",
		slog.String("company_id", claims.CompanyID),
		slog.String("updated_by", claims.UserID),
	)

	comp, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return toResponse(comp), nil
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		Code:             c.Code,
		AttendanceConfig: c.AttendanceConfig,
	}
}
