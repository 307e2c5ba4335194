package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/iot"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type supervisorRepositoryImpl struct {
	db *database.DB
}

func NewSupervisorRepository(db *database.DB) iot.SupervisorRepository {
	return &supervisorRepositoryImpl{db: db}
}

const supervisorColumns = `
	id, company_id, worker_id, serial_number, is_active, in_admin_mode,
	last_active, created_at, updated_at
`

func scanSupervisor(row pgx.Row) (iot.Supervisor, error) {
	var s iot.Supervisor
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.WorkerID, &s.SerialNumber, &s.IsActive,
		&s.InAdminMode, &s.LastActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) Create(ctx context.Context, s iot.Supervisor) (iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO supervisors (id, company_id, worker_id, serial_number, in_admin_mode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + supervisorColumns

	created, err := scanSupervisor(q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.WorkerID, s.SerialNumber, s.InAdminMode,
	))
	if err != nil {
		if isUniqueViolation(err, "supervisors_serial_number_key") {
			return iot.Supervisor{}, iot.ErrSerialNumberExists
		}
		return iot.Supervisor{}, fmt.Errorf("failed to create supervisor: %w", err)
	}
	return created, nil
}

// GetByID implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + supervisorColumns + ` FROM supervisors WHERE id = $1 AND company_id = $2`

	s, err := scanSupervisor(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return iot.Supervisor{}, iot.ErrSupervisorNotFound
		}
		return iot.Supervisor{}, fmt.Errorf("failed to get supervisor: %w", err)
	}
	return s, nil
}

// GetBySerialNumber implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) GetBySerialNumber(ctx context.Context, serialNumber string) (iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + supervisorColumns + ` FROM supervisors WHERE serial_number = $1`

	s, err := scanSupervisor(q.QueryRow(ctx, query, serialNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return iot.Supervisor{}, iot.ErrSupervisorNotFound
		}
		return iot.Supervisor{}, fmt.Errorf("failed to get supervisor: %w", err)
	}
	return s, nil
}

// ListByCompany implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + supervisorColumns + ` FROM supervisors WHERE company_id = $1 ORDER BY created_at, id`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}
	defer rows.Close()

	var result []iot.Supervisor
	for rows.Next() {
		s, err := scanSupervisor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supervisor: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) Update(ctx context.Context, s iot.Supervisor) (iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE supervisors
		SET worker_id = $3, serial_number = $4, in_admin_mode = $5, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING ` + supervisorColumns

	updated, err := scanSupervisor(q.QueryRow(ctx, query,
		s.ID, s.CompanyID, s.WorkerID, s.SerialNumber, s.InAdminMode,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return iot.Supervisor{}, iot.ErrSupervisorNotFound
		}
		if isUniqueViolation(err, "supervisors_serial_number_key") {
			return iot.Supervisor{}, iot.ErrSerialNumberExists
		}
		return iot.Supervisor{}, fmt.Errorf("failed to update supervisor: %w", err)
	}
	return updated, nil
}

// Delete implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM supervisors WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete supervisor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return iot.ErrSupervisorNotFound
	}
	return nil
}

// Heartbeat implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) Heartbeat(ctx context.Context, serialNumber string, at time.Time) (iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE supervisors
		SET is_active = TRUE, last_active = $2, updated_at = NOW()
		WHERE serial_number = $1
		RETURNING ` + supervisorColumns

	s, err := scanSupervisor(q.QueryRow(ctx, query, serialNumber, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return iot.Supervisor{}, iot.ErrSupervisorNotFound
		}
		return iot.Supervisor{}, fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return s, nil
}

// SweepInactive implements iot.SupervisorRepository.
func (r *supervisorRepositoryImpl) SweepInactive(ctx context.Context, cutoff time.Time) ([]iot.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE supervisors
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active AND last_active < $1
		RETURNING ` + supervisorColumns

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep supervisors: %w", err)
	}
	defer rows.Close()

	var swept []iot.Supervisor
	for rows.Next() {
		s, err := scanSupervisor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supervisor: %w", err)
		}
		swept = append(swept, s)
	}
	return swept, rows.Err()
}
