package iot

import (
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
)

type RegisterSupervisorRequest struct {
	SerialNumber string  `json:"serial_number"`
	WorkerID     *string `json:"worker_id,omitempty"`
}

func (r *RegisterSupervisorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HeartbeatRequest struct {
	SerialNumber string `json:"serial_number"`
}

func (r *HeartbeatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OutOfPlaceRequest struct {
	SerialNumber string `json:"serial_number"`
	Description  string `json:"description"`
}

func (r *OutOfPlaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupervisorResponse struct {
	ID           string    `json:"id"`
	SerialNumber string    `json:"serial_number"`
	WorkerID     *string   `json:"worker_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	InAdminMode  bool      `json:"in_admin_mode"`
	LastActive   time.Time `json:"last_active"`
}
