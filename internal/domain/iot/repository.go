package iot

import (
	"context"
	"time"
)

type SupervisorRepository interface {
	Create(ctx context.Context, s Supervisor) (Supervisor, error)
	GetByID(ctx context.Context, id, companyID string) (Supervisor, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (Supervisor, error)
	ListByCompany(ctx context.Context, companyID string) ([]Supervisor, error)
	Update(ctx context.Context, s Supervisor) (Supervisor, error)
	Delete(ctx context.Context, id, companyID string) error
	// Heartbeat stamps last_active and flips the beacon active.
	Heartbeat(ctx context.Context, serialNumber string, at time.Time) (Supervisor, error)
	// SweepInactive deactivates beacons silent since the cutoff and returns
	// the swept rows so their workers' active appointments can be flagged.
	SweepInactive(ctx context.Context, cutoff time.Time) ([]Supervisor, error)
}
