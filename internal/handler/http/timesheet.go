package http

import (
	"net/http"

	"github.com/hrsaas/timesheet-backend/internal/domain/timesheet"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetMonthDetail(w http.ResponseWriter, r *http.Request)
	GetMonthSummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// GetMonthDetail handles GET /timesheets/month-detail/{userId}?year=&month=
func (h *timesheetHandlerImpl) GetMonthDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	period, err := timesheet.ParsePeriod(query.Get("year"), query.Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetMonthDetail(r.Context(), timesheet.MonthDetailRequest{
		UserID: userID,
		Period: period,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMonthSummary handles GET /timesheets/month-summary?year=&month=
func (h *timesheetHandlerImpl) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	period, err := timesheet.ParsePeriod(query.Get("year"), query.Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.GetMonthSummary(r.Context(), timesheet.MonthSummaryRequest{Period: period})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
