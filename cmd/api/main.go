package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
	"github.com/hrsaas/timesheet-backend/internal/config"
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	appHTTP "github.com/hrsaas/timesheet-backend/internal/handler/http"
	"github.com/hrsaas/timesheet-backend/internal/pkg/database"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/hrsaas/timesheet-backend/internal/repository/memory"
	"github.com/hrsaas/timesheet-backend/internal/repository/postgresql"
	attendanceService "github.com/hrsaas/timesheet-backend/internal/service/attendance"
	companyService "github.com/hrsaas/timesheet-backend/internal/service/company"
	leaveService "github.com/hrsaas/timesheet-backend/internal/service/leave"
	overtimeService "github.com/hrsaas/timesheet-backend/internal/service/overtime"
	timesheetService "github.com/hrsaas/timesheet-backend/internal/service/timesheet"
	"github.com/shopspring/decimal"
)

const appVersion = "v1.0.0"

type repositories struct {
	users      user.UserRepository
	companies  company.CompanyRepository
	attendance attendance.AttendanceRepository
	complaints attendance.ComplaintRepository
	leaves     leave.LeaveRequestRepository
	overtimes  overtime.OvertimeRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Error("invalid timezone", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var repos repositories
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer db.Close()

		repos = repositories{
			users:      postgresql.NewUserRepository(db),
			companies:  postgresql.NewCompanyRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			complaints: postgresql.NewComplaintRepository(db),
			leaves:     postgresql.NewLeaveRequestRepository(db),
			overtimes:  postgresql.NewOvertimeRepository(db),
		}
	case config.DriverMemory:
		repos, err = seedMemory(logger, JWTService)
		if err != nil {
			logger.Error("failed to seed memory store", slog.Any("error", err))
			os.Exit(1)
		}
	}

	companySvc := companyService.NewCompanyService(repos.companies, logger)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.complaints, repos.users, repos.companies, location, logger)
	leaveSvc := leaveService.NewLeaveService(repos.leaves, repos.users, repos.companies, logger)
	overtimeSvc := overtimeService.NewOvertimeService(repos.overtimes, repos.users, logger)
	timesheetSvc := timesheetService.NewTimesheetService(
		repos.users,
		repos.companies,
		repos.attendance,
		repos.complaints,
		repos.leaves,
		repos.overtimes,
		cfg.App.SummaryConcurrency,
		logger,
	)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RequestTimeout: cfg.App.RequestTimeout,
		},
		logger,
		JWTService,
		appHTTP.NewCompanyHandler(companySvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewOvertimeHandler(overtimeSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", slog.String("addr", server.Addr), slog.String("db_driver", cfg.Database.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.App.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
}

// seedMemory builds an in-memory store holding one company on default policy
// and its admin, and logs an access token for that admin.
func seedMemory(logger *slog.Logger, jwtService jwt.Service) (repositories, error) {
	companyID, err := uuid.NewV7()
	if err != nil {
		return repositories{}, err
	}
	adminID, err := uuid.NewV7()
	if err != nil {
		return repositories{}, err
	}
	cid := companyID.String()

	companies := memory.NewCompanyRepository()
	companies.Save(company.Company{
		ID:               cid,
		Name:             "Demo Company",
		AttendanceConfig: &company.AttendanceConfig{},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	})

	users := memory.NewUserRepository()
	admin := user.User{
		ID:        adminID.String(),
		CompanyID: &cid,
		Email:     "admin@demo.local",
		FullName:  "Demo Admin",
		Role:      user.RoleAdmin,
		Salary:    decimal.NewFromInt(5_200_000),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	users.Save(admin)

	token, _, err := jwtService.GenerateAccessToken(admin.ID, admin.Email, cid, admin.Role)
	if err != nil {
		return repositories{}, err
	}
	logger.Info("memory store seeded",
		slog.String("company_id", cid),
		slog.String("admin_id", admin.ID),
		slog.String("admin_token", token),
	)

	return repositories{
		users:      users,
		companies:  companies,
		attendance: memory.NewAttendanceRepository(),
		complaints: memory.NewComplaintRepository(),
		leaves:     memory.NewLeaveRequestRepository(),
		overtimes:  memory.NewOvertimeRepository(),
	}, nil
}
