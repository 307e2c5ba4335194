package company

import "errors"

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrQualificationNotFound = errors.New("qualification not found")
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskLocked            = errors.New("task has an active appointment and cannot be changed")
	ErrForeignQualification  = errors.New("qualification belongs to another company")
	ErrInvalidTimezone       = errors.New("unknown timezone identifier")
)
