package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/hrsaas/timesheet-backend/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	companyID = "company-1"
	adminID   = "admin-1"
	staffID   = "staff-1"
)

type fixture struct {
	service   leave.LeaveService
	leaveRepo *memory.LeaveRequestRepository
	tokenAuth *jwtauth.JWTAuth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	companies := memory.NewCompanyRepository()
	companies.Save(company.Company{
		ID:   companyID,
		Name: "Acme",
		AttendanceConfig: &company.AttendanceConfig{
			LeavePolicy: company.LeavePolicy{AnnualLeaveDays: "3"},
		},
	})

	cid := companyID
	users := memory.NewUserRepository()
	users.Save(user.User{ID: adminID, CompanyID: &cid, FullName: "Ada Admin", Email: "ada@acme.test", Role: user.RoleAdmin, IsActive: true, Salary: decimal.Zero})
	users.Save(user.User{ID: staffID, CompanyID: &cid, FullName: "Sam Staff", Email: "sam@acme.test", Role: user.RoleUser, IsActive: true, Salary: decimal.Zero})

	leaves := memory.NewLeaveRequestRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		service:   NewLeaveService(leaves, users, companies, logger),
		leaveRepo: leaves,
		tokenAuth: jwtauth.New("HS256", []byte("test-secret"), nil),
	}
}

func (f fixture) as(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ctx, err := jwt.NewContext(context.Background(), f.tokenAuth, jwt.Claims{UserID: userID, CompanyID: companyID, Role: role})
	require.NoError(t, err)
	return ctx
}

func TestLeaveService_CreateAndApprove(t *testing.T) {
	f := newFixture(t)
	staff := f.as(t, staffID, user.RoleUser)
	admin := f.as(t, adminID, user.RoleAdmin)

	created, err := f.service.CreateRequest(staff, leave.CreateLeaveRequest{
		Type: "annual", StartDate: "2024-03-04", EndDate: "2024-03-05", Reason: "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "full", created.DayType)
	assert.Equal(t, 2, created.WorkingDays)
	assert.NotEmpty(t, created.ID)

	// overlapping a pending request
	_, err = f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "sick", StartDate: "2024-03-05", EndDate: "2024-03-05"})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)

	_, err = f.service.ApproveRequest(staff, leave.ReviewLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	note := "enjoy"
	approved, err := f.service.ApproveRequest(admin, leave.ReviewLeaveRequest{ID: created.ID, AdminNote: &note})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "Ada Admin", approved.ApprovedBy.FullName)
	assert.Equal(t, &note, approved.AdminNote)

	_, err = f.service.RejectRequest(admin, leave.ReviewLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	balance, err := f.service.GetMyBalance(staff)
	require.NoError(t, err)
	assert.Equal(t, leave.BalanceResponse{AnnualLeaveDays: 3, Used: 2, Remaining: 1}, balance)

	_, err = f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "annual", StartDate: "2024-04-01", EndDate: "2024-04-02"})
	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)
}

func TestLeaveService_ApprovalRechecksQuota(t *testing.T) {
	f := newFixture(t)
	staff := f.as(t, staffID, user.RoleUser)
	admin := f.as(t, adminID, user.RoleAdmin)

	// each fits the remaining quota alone
	first, err := f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "annual", StartDate: "2024-05-06", EndDate: "2024-05-07"})
	require.NoError(t, err)
	second, err := f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "annual", StartDate: "2024-05-13", EndDate: "2024-05-14"})
	require.NoError(t, err)

	_, err = f.service.ApproveRequest(admin, leave.ReviewLeaveRequest{ID: first.ID})
	require.NoError(t, err)

	_, err = f.service.ApproveRequest(admin, leave.ReviewLeaveRequest{ID: second.ID})
	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)

	rejected, err := f.service.RejectRequest(admin, leave.ReviewLeaveRequest{ID: second.ID})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)

	mine, err := f.service.GetMyRequests(staff)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID, "newest start date first")
}

func TestLeaveService_Validation(t *testing.T) {
	f := newFixture(t)
	staff := f.as(t, staffID, user.RoleUser)

	_, err := f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "holiday", StartDate: "2024-03-04", EndDate: "2024-03-04"})
	assert.Error(t, err)

	_, err = f.service.CreateRequest(staff, leave.CreateLeaveRequest{Type: "annual", StartDate: "2024-03-05", EndDate: "2024-03-04"})
	assert.Error(t, err)

	_, err = f.service.GetMyBalance(context.Background())
	assert.ErrorIs(t, err, jwt.ErrMissingClaims)

	_, err = f.service.ApproveRequest(f.as(t, adminID, user.RoleAdmin), leave.ReviewLeaveRequest{ID: "missing"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
