package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
)

type OvertimeHandler interface {
	CreateOvertime(w http.ResponseWriter, r *http.Request)
	GetMyOvertimes(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	RejectOvertime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

// CreateOvertime implements OvertimeHandler.
func (h *overtimeHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.CreateOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime submitted", result)
}

// GetMyOvertimes implements OvertimeHandler.
func (h *overtimeHandlerImpl) GetMyOvertimes(w http.ResponseWriter, r *http.Request) {
	result, err := h.overtimeService.GetMyOvertimes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApproveOvertime implements OvertimeHandler.
func (h *overtimeHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.overtimeService.ApproveOvertime, "Overtime approved")
}

// RejectOvertime implements OvertimeHandler.
func (h *overtimeHandlerImpl) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.overtimeService.RejectOvertime, "Overtime rejected")
}

func (h *overtimeHandlerImpl) review(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, req overtime.ReviewOvertimeRequest) (overtime.OvertimeResponse, error),
	message string,
) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req overtime.ReviewOvertimeRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := action(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
