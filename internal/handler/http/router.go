package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/middleware"
	"github.com/hrsaas/timesheet-backend/internal/handler/http/response"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
)

type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(
	opts RouterOptions,
	logger *slog.Logger,
	JWTService jwt.Service,
	companyHandler CompanyHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	timesheetHandler TimesheetHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	if opts.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.GetMyCompany)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/attendance-config", companyHandler.UpdateAttendanceConfig)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/complaints", attendanceHandler.CreateComplaint)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/complaints/{id}/approve", attendanceHandler.ApproveComplaint)
					r.Post("/complaints/{id}/reject", attendanceHandler.RejectComplaint)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/balance", leaveHandler.GetMyBalance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", leaveHandler.ApproveRequest)
					r.Post("/{id}/reject", leaveHandler.RejectRequest)
				})
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Post("/", overtimeHandler.CreateOvertime)
				r.Get("/my", overtimeHandler.GetMyOvertimes)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", overtimeHandler.ApproveOvertime)
					r.Post("/{id}/reject", overtimeHandler.RejectOvertime)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				// self-or-admin is decided by the service
				r.Get("/month-detail/{userId}", timesheetHandler.GetMonthDetail)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/month-summary", timesheetHandler.GetMonthSummary)
				})
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
