package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) worker.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements worker.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s worker.Schedule) (worker.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO worker_schedules (id, worker_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.WorkerID,
		s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday,
	)
	if err != nil {
		return worker.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s, nil
}

// GetByWorkerID implements worker.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByWorkerID(ctx context.Context, workerID string) (worker.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday
		FROM worker_schedules
		WHERE worker_id = $1
	`

	var s worker.Schedule
	err := q.QueryRow(ctx, query, workerID).Scan(
		&s.ID, &s.WorkerID,
		&s.Monday, &s.Tuesday, &s.Wednesday, &s.Thursday, &s.Friday, &s.Saturday, &s.Sunday,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Schedule{}, worker.ErrScheduleNotFound
		}
		return worker.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return s, nil
}

// Update implements worker.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, s worker.Schedule) (worker.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE worker_schedules
		SET monday = $2, tuesday = $3, wednesday = $4, thursday = $5,
		    friday = $6, saturday = $7, sunday = $8
		WHERE worker_id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.WorkerID,
		s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday, s.Saturday, s.Sunday,
	)
	if err != nil {
		return worker.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.Schedule{}, worker.ErrScheduleNotFound
	}

	return r.GetByWorkerID(ctx, s.WorkerID)
}
