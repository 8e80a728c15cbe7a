package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleSysAdmin Role = "sys_admin" // Platform operator
	RoleAdmin    Role = "admin"     // Company admin - approves requests, reads every timesheet
	RoleUser     Role = "user"      // Regular employee
)

type User struct {
	ID           string
	CompanyID    *string
	Email        string
	FullName     string
	EmployeeCode *string
	Role         Role
	JobTitle     *string
	Salary       decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage company data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSysAdmin
}

// BelongsTo checks the user's company membership
func (u *User) BelongsTo(companyID string) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}

// Snapshot captures who acted on a request at the time they acted.
func (u *User) Snapshot() Snapshot {
	return Snapshot{ID: u.ID, FullName: u.FullName, Email: u.Email}
}

// Snapshot is denormalized onto approved requests so renames do not rewrite history.
type Snapshot struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
