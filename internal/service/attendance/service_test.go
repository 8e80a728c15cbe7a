package attendance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
	"github.com/hrsaas/timesheet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

type fixture struct {
	service   *AttendanceServiceImpl
	logs      *memory.AttendanceRepository
	companies *memory.CompanyRepository
	tokenAuth *jwtauth.JWTAuth
	clock     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cid := companyID

	companies := memory.NewCompanyRepository()
	companies.Save(company.Company{ID: companyID, AttendanceConfig: &company.AttendanceConfig{}})

	users := memory.NewUserRepository()
	users.Save(user.User{ID: "admin", CompanyID: &cid, FullName: "Ada", Email: "ada@acme.test", Role: user.RoleAdmin, IsActive: true})
	users.Save(user.User{ID: "staff", CompanyID: &cid, FullName: "Sam", Role: user.RoleUser, IsActive: true})

	logs := memory.NewAttendanceRepository()
	jakarta := time.FixedZone("WIB", 7*60*60)
	svc := NewAttendanceService(logs, memory.NewComplaintRepository(), users, companies, jakarta, slog.New(slog.NewTextHandler(io.Discard, nil)))

	f := &fixture{
		service:   svc,
		logs:      logs,
		companies: companies,
		tokenAuth: jwtauth.New("HS256", []byte("test-secret"), nil),
	}
	svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) as(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ctx, err := jwt.NewContext(context.Background(), f.tokenAuth, jwt.Claims{UserID: userID, CompanyID: companyID, Role: role})
	require.NoError(t, err)
	return ctx
}

func TestTotalHours(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		want    float64
	}{
		{"full day with break", "08:00", "17:00", 8},
		{"morning only", "08:00", "12:00", 4},
		{"leaves during break", "08:00", "12:30", 4},
		{"starts during break", "12:30", "17:00", 4},
		{"inside break", "12:10", "12:50", 0},
		{"fractional", "08:00", "09:20", 1.33},
		{"out before in", "10:00", "09:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalHours(tt.in, tt.out, 12*60, 13*60)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}

	_, err := TotalHours("8", "17:00", 0, 0)
	assert.Error(t, err)
}

func TestAttendanceService_CheckInOut(t *testing.T) {
	f := newFixture(t)
	staff := f.as(t, "staff", user.RoleUser)

	_, err := f.service.CheckOut(staff, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	// 01:05 UTC is 08:05 local
	f.clock = time.Date(2024, 3, 4, 1, 5, 0, 0, time.UTC)
	in, err := f.service.CheckIn(staff, attendance.PunchRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", in.Date)
	assert.Equal(t, "08:05", *in.CheckIn)
	assert.Nil(t, in.CheckOut)

	_, err = f.service.CheckIn(staff, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	f.clock = time.Date(2024, 3, 4, 10, 5, 0, 0, time.UTC)
	image := "https://cdn.acme.test/out.jpg"
	out, err := f.service.CheckOut(staff, attendance.PunchRequest{ImageURL: &image})
	require.NoError(t, err)
	assert.Equal(t, "17:05", *out.CheckOut)
	require.NotNil(t, out.TotalHours)
	assert.InDelta(t, 8.0, *out.TotalHours, 0.0001)
	assert.Equal(t, &image, out.CheckOutImage)

	_, err = f.service.CheckOut(staff, attendance.PunchRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	_, err = f.service.CheckIn(staff, attendance.PunchRequest{ImageURL: strPtr("not a url")})
	assert.Error(t, err)
}

func TestAttendanceService_CheckOutWithoutConfig(t *testing.T) {
	f := newFixture(t)
	f.companies.Save(company.Company{ID: companyID})
	staff := f.as(t, "staff", user.RoleUser)

	f.clock = time.Date(2024, 3, 4, 1, 0, 0, 0, time.UTC)
	_, err := f.service.CheckIn(staff, attendance.PunchRequest{})
	require.NoError(t, err)

	f.clock = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	out, err := f.service.CheckOut(staff, attendance.PunchRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 9.0, *out.TotalHours, 0.0001)
}

func TestAttendanceService_Complaints(t *testing.T) {
	f := newFixture(t)
	staff := f.as(t, "staff", user.RoleUser)
	admin := f.as(t, "admin", user.RoleAdmin)

	f.clock = time.Date(2024, 3, 4, 2, 0, 0, 0, time.UTC)
	_, err := f.service.CheckIn(staff, attendance.PunchRequest{})
	require.NoError(t, err)

	req := attendance.CreateComplaintRequest{Date: "2024-03-04", Action: "check_in", Time: "08:00", Reason: "badge reader down"}
	complaint, err := f.service.CreateComplaint(staff, req)
	require.NoError(t, err)
	assert.Equal(t, "pending", complaint.Status)

	_, err = f.service.CreateComplaint(staff, req)
	assert.ErrorIs(t, err, attendance.ErrComplaintExists)

	_, err = f.service.ApproveComplaint(staff, attendance.ReviewComplaintRequest{ID: complaint.ID})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	approved, err := f.service.ApproveComplaint(admin, attendance.ReviewComplaintRequest{ID: complaint.ID})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "admin", approved.ReviewedBy.ID)

	// approval must not rewrite the punch
	log, err := f.logs.GetByUserAndDate(context.Background(), "staff", "2024-03-04", companyID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", *log.CheckIn)

	_, err = f.service.RejectComplaint(admin, attendance.ReviewComplaintRequest{ID: complaint.ID})
	assert.ErrorIs(t, err, attendance.ErrComplaintAlreadyProcessed)

	// a new complaint is allowed once the earlier one is processed
	_, err = f.service.CreateComplaint(staff, req)
	assert.NoError(t, err)

	_, err = f.service.RejectComplaint(admin, attendance.ReviewComplaintRequest{ID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrComplaintNotFound)

	_, err = f.service.CreateComplaint(staff, attendance.CreateComplaintRequest{Date: "2024-03-04", Action: "lunch", Time: "8", Reason: "x"})
	assert.Error(t, err)

	_, err = f.service.CreateComplaint(staff, attendance.CreateComplaintRequest{Date: "2024-03-05", Action: "check_out", Time: "17:00", Reason: "   "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "must not be blank", verrs.ToMap()["reason"])
}

func TestPunchTime(t *testing.T) {
	date, clock := punchTime(time.Date(2024, 3, 4, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, "2024-03-04", date)
	assert.Equal(t, "07:05", clock)
}

func strPtr(s string) *string { return &s }
