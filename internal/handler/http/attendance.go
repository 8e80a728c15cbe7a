package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CreateComplaint(w http.ResponseWriter, r *http.Request)
	ApproveComplaint(w http.ResponseWriter, r *http.Request)
	RejectComplaint(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check out successful", result)
}

// CreateComplaint implements AttendanceHandler.
func (h *attendanceHandlerImpl) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateComplaint decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateComplaint(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Complaint submitted", result)
}

// ApproveComplaint implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveComplaint(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.attendanceService.ApproveComplaint, "Complaint approved")
}

// RejectComplaint implements AttendanceHandler.
func (h *attendanceHandlerImpl) RejectComplaint(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.attendanceService.RejectComplaint, "Complaint rejected")
}

func (h *attendanceHandlerImpl) review(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, req attendance.ReviewComplaintRequest) (attendance.ComplaintResponse, error),
	message string,
) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.ReviewComplaintRequest
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
