package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id, employerID string) (Worker, error)
	GetByUserID(ctx context.Context, userID string) (Worker, error)
	ListByCompany(ctx context.Context, employerID, search string) ([]Worker, error)
	// ListRanked returns the employer's workers ordered by productivity desc,
	// qualification modifier desc, working hours desc, creation asc. The
	// order is the assignment engine's candidate order and must be stable.
	ListRanked(ctx context.Context, employerID string) ([]Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	// UpdateProductivity conditionally blends the new productivity value in
	// the caller's transaction.
	UpdateProductivity(ctx context.Context, id string, productivity float64) error
	Delete(ctx context.Context, id, employerID string) error
}

type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByWorkerID(ctx context.Context, workerID string) (Schedule, error)
	Update(ctx context.Context, s Schedule) (Schedule, error)
}

type LogRepository interface {
	// Create appends one audit entry. The trail is append-only: there is no
	// update or delete in the normal flow.
	Create(ctx context.Context, l Log) (Log, error)
	ListByCompany(ctx context.Context, companyID string, f LogFilter) ([]Log, int64, error)
	ListByWorker(ctx context.Context, workerID string, f LogFilter) ([]Log, int64, error)
}
