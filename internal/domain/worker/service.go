package worker

import "context"

type WorkerService interface {
	Create(ctx context.Context, employerID string, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, employerID, id string) (WorkerResponse, error)
	List(ctx context.Context, employerID, search string) ([]WorkerResponse, error)
	Update(ctx context.Context, employerID, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	Delete(ctx context.Context, employerID, id string) error

	GetSchedule(ctx context.Context, employerID, workerID string) (ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, employerID, workerID string, req ScheduleRequest) (ScheduleResponse, error)

	CompanyLogs(ctx context.Context, companyID string, f LogFilter) ([]LogResponse, int64, error)
	WorkerLogs(ctx context.Context, workerID string, f LogFilter) ([]LogResponse, int64, error)

	Report(ctx context.Context, employerID string) ([]Report, error)
}
