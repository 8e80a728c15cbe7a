package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMyCompany(w http.ResponseWriter, r *http.Request)
	UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// GetMyCompany implements CompanyHandler.
func (c *CompanyHandlerImpl) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	result, err := c.companyService.GetMyCompany(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateAttendanceConfig implements CompanyHandler.
func (c *CompanyHandlerImpl) UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateAttendanceConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateAttendanceConfig decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := c.companyService.UpdateAttendanceConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance config updated successfully", result)
}
