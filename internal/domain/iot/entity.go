package iot

import "time"

// Supervisor is a presence beacon installed at a workplace. It reports
// heartbeats for the worker it is bound to; a beacon silent for too long is
// swept inactive by a background job.
type Supervisor struct {
	ID           string
	CompanyID    string
	WorkerID     *string
	SerialNumber string
	IsActive     bool
	InAdminMode  bool
	LastActive   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
