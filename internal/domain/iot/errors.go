package iot

import "errors"

var (
	ErrSupervisorNotFound = errors.New("supervisor not found")
	ErrSerialNumberExists = errors.New("serial number already registered")
)
