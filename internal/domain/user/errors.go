package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrForbidden              = errors.New("not allowed to access this user")
	ErrCompanyIDRequired      = errors.New("company ID is required")
)
