// Package memory implements the domain repositories on guarded maps.
// It backs DB_DRIVER=memory and the service tests; every method honors the
// same companyID isolation as the postgresql package.
package memory

import (
	"github.com/hrsaas/timesheet-backend/internal/domain/attendance"
	"github.com/hrsaas/timesheet-backend/internal/domain/company"
	"github.com/hrsaas/timesheet-backend/internal/domain/leave"
	"github.com/hrsaas/timesheet-backend/internal/domain/overtime"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
)

var (
	_ company.CompanyRepository       = (*CompanyRepository)(nil)
	_ user.UserRepository             = (*UserRepository)(nil)
	_ attendance.AttendanceRepository = (*AttendanceRepository)(nil)
	_ attendance.ComplaintRepository  = (*ComplaintRepository)(nil)
	_ leave.LeaveRequestRepository    = (*LeaveRequestRepository)(nil)
	_ overtime.OvertimeRepository     = (*OvertimeRepository)(nil)
)
