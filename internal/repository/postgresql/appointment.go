package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type appointmentRepositoryImpl struct {
	db *database.DB
}

func NewAppointmentRepository(db *database.DB) appointment.AppointmentRepository {
	return &appointmentRepositoryImpl{db: db}
}

const appointmentColumns = `
	a.id, a.task_id, a.worker_id, a.is_done, a.difficulty_for_worker,
	a.time_start, a.time_end, a.deadline, a.status, a.created_at, a.updated_at
`

func scanAppointment(row pgx.Row) (appointment.Appointment, error) {
	var a appointment.Appointment
	err := row.Scan(
		&a.ID, &a.TaskID, &a.WorkerID, &a.IsDone, &a.DifficultyForWorker,
		&a.TimeStart, &a.TimeEnd, &a.Deadline, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements appointment.AppointmentRepository. The validation pass in
// the service is not atomic with the insert, so a race that slips past it is
// caught here by the unique constraints and mapped back to the same errors.
func (r *appointmentRepositoryImpl) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO task_appointments (id, task_id, worker_id, difficulty_for_worker, time_start, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, task_id, worker_id, is_done, difficulty_for_worker,
			time_start, time_end, deadline, status, created_at, updated_at
	`

	created, err := scanAppointment(q.QueryRow(ctx, query,
		a.ID, a.TaskID, a.WorkerID, a.DifficultyForWorker, a.TimeStart, a.Deadline,
	))
	if err != nil {
		if isUniqueViolation(err, "uq_appointment_task") {
			return appointment.Appointment{}, appointment.ErrTaskAlreadyAppointed
		}
		if isUniqueViolation(err, "uq_appointment_worker_active") {
			return appointment.Appointment{}, appointment.ErrWorkerBusy
		}
		return appointment.Appointment{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	return created, nil
}

// GetByID implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) GetByID(ctx context.Context, id string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + appointmentColumns + ` FROM task_appointments a WHERE a.id = $1`

	a, err := scanAppointment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.Appointment{}, appointment.ErrAppointmentNotFound
		}
		return appointment.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	return a, nil
}

// GetByTaskID implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) GetByTaskID(ctx context.Context, taskID string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + appointmentColumns + ` FROM task_appointments a WHERE a.task_id = $1`

	a, err := scanAppointment(q.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.Appointment{}, appointment.ErrAppointmentNotFound
		}
		return appointment.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	return a, nil
}

func (r *appointmentRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var result []appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// ListByCompany implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ListByCompany(ctx context.Context, companyID string, isDone *bool) ([]appointment.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM task_appointments a
		JOIN tasks t ON t.id = a.task_id
		WHERE t.company_id = $1 AND ($2::boolean IS NULL OR a.is_done = $2)
		ORDER BY a.created_at DESC, a.id
	`
	return r.list(ctx, query, companyID, isDone)
}

// ListByWorker implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ListByWorker(ctx context.Context, workerID string, isDone *bool) ([]appointment.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM task_appointments a
		WHERE a.worker_id = $1 AND ($2::boolean IS NULL OR a.is_done = $2)
		ORDER BY a.created_at DESC, a.id
	`
	return r.list(ctx, query, workerID, isDone)
}

// GetActiveByWorker implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) GetActiveByWorker(ctx context.Context, workerID string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + appointmentColumns + ` FROM task_appointments a WHERE a.worker_id = $1 AND NOT a.is_done`

	a, err := scanAppointment(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.Appointment{}, appointment.ErrAppointmentNotFound
		}
		return appointment.Appointment{}, fmt.Errorf("failed to get active appointment: %w", err)
	}
	return a, nil
}

// ActiveWorkerIDs implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ActiveWorkerIDs(ctx context.Context, companyID string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.worker_id
		FROM task_appointments a
		JOIN workers w ON w.id = a.worker_id
		WHERE w.employer_id = $1 AND NOT a.is_done
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy workers: %w", err)
	}
	defer rows.Close()

	busy := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan busy worker: %w", err)
		}
		busy[id] = true
	}
	return busy, rows.Err()
}

// MarkDone implements appointment.AppointmentRepository. The conditional
// update makes the done transition happen at most once even under concurrent
// completion requests.
func (r *appointmentRepositoryImpl) MarkDone(ctx context.Context, id, workerID string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE task_appointments
		SET is_done = TRUE, time_end = NOW(), updated_at = NOW()
		WHERE id = $1 AND worker_id = $2 AND is_done = FALSE
		RETURNING id, task_id, worker_id, is_done, difficulty_for_worker,
			time_start, time_end, deadline, status, created_at, updated_at
	`

	a, err := scanAppointment(q.QueryRow(ctx, query, id, workerID))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return appointment.Appointment{}, fmt.Errorf("failed to mark appointment done: %w", err)
	}

	// No row changed: either the appointment does not belong to the worker
	// or it was already done.
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return appointment.Appointment{}, getErr
	}
	if existing.WorkerID != workerID {
		return appointment.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return appointment.Appointment{}, appointment.ErrAlreadyDone
}

// UpdateStatus implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) UpdateStatus(ctx context.Context, id, workerID, status string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE task_appointments
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND worker_id = $2 AND is_done = FALSE
		RETURNING id, task_id, worker_id, is_done, difficulty_for_worker,
			time_start, time_end, deadline, status, created_at, updated_at
	`

	a, err := scanAppointment(q.QueryRow(ctx, query, id, workerID, status))
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return appointment.Appointment{}, fmt.Errorf("failed to update appointment status: %w", err)
	}

	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return appointment.Appointment{}, getErr
	}
	if existing.WorkerID != workerID {
		return appointment.Appointment{}, appointment.ErrAppointmentNotFound
	}
	return appointment.Appointment{}, appointment.ErrAlreadyDone
}
