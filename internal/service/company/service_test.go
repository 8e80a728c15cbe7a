package company

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/hrsaas/timesheet-backend/internal/pkg/jwt"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
	"github.com/hrsaas/timesheet-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (company.CompanyService, *memory.CompanyRepository, func(user.Role) context.Context) {
	t.Helper()
	repo := memory.NewCompanyRepository()
	repo.Save(company.Company{ID: "company-1", Name: "Acme"})

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	as := func(role user.Role) context.Context {
		ctx, err := jwt.NewContext(context.Background(), ja, jwt.Claims{UserID: "u-1", CompanyID: "company-1", Role: role})
		require.NoError(t, err)
		return ctx
	}
	return NewCompanyService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo, as
}

func TestGetMyCompany(t *testing.T) {
	svc, _, as := setup(t)

	resp, err := svc.GetMyCompany(as(user.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)
	assert.Nil(t, resp.AttendanceConfig)
}

func TestUpdateAttendanceConfig(t *testing.T) {
	svc, repo, as := setup(t)

	req := company.UpdateAttendanceConfigRequest{AttendanceConfig: company.AttendanceConfig{
		WorkingHours: company.WorkingHours{StartTime: "09:00", EndTime: "18:00", WorkingDays: []string{"mon", "tue", "wed", "thu", "fri"}},
		LateRule:     company.LateRule{AllowMinutes: "10"},
	}}

	_, err := svc.UpdateAttendanceConfig(as(user.RoleUser), req)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	resp, err := svc.UpdateAttendanceConfig(as(user.RoleAdmin), req)
	require.NoError(t, err)
	require.NotNil(t, resp.AttendanceConfig)
	assert.Equal(t, "09:00", resp.AttendanceConfig.WorkingHours.StartTime)

	stored, err := repo.GetByID(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Equal(t, company.NumericString("10"), stored.AttendanceConfig.LateRule.AllowMinutes)
}

func TestUpdateAttendanceConfig_Invalid(t *testing.T) {
	svc, repo, as := setup(t)

	bad := company.UpdateAttendanceConfigRequest{AttendanceConfig: company.AttendanceConfig{
		WorkingHours: company.WorkingHours{StartTime: "9am", WorkingDays: []string{"funday"}},
		LateRule:     company.LateRule{AllowMinutes: "-3", MaxLateAsAbsentMinutes: "1e20"},
	}}
	_, err := svc.UpdateAttendanceConfig(as(user.RoleAdmin), bad)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "working_hours.start_time")
	assert.Contains(t, fields, "working_hours.working_days")
	assert.Contains(t, fields, "late_rule.allow_minutes")
	assert.Equal(t, "must not exceed 2147483647", fields["late_rule.max_late_as_absent_minutes"])

	stored, err := repo.GetByID(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Nil(t, stored.AttendanceConfig)
}
