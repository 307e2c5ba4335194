package iot

import "context"

type SupervisorService interface {
	Register(ctx context.Context, companyID string, req RegisterSupervisorRequest) (SupervisorResponse, error)
	Get(ctx context.Context, companyID, id string) (SupervisorResponse, error)
	List(ctx context.Context, companyID string) ([]SupervisorResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	// Device-facing operations, authenticated by serial number only.
	Heartbeat(ctx context.Context, req HeartbeatRequest) (SupervisorResponse, error)
	ReportOutOfPlace(ctx context.Context, req OutOfPlaceRequest) error

	// SweepInactive is invoked by the cron scheduler on a fixed interval.
	SweepInactive(ctx context.Context) error
}
