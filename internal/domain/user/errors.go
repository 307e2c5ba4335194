package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrEmailExists         = errors.New("email already registered")
	ErrCompanyRoleRequired = errors.New("company role required")
	ErrWorkerRoleRequired  = errors.New("worker role required")
)
