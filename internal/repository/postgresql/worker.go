package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	w.id, w.employer_id, w.qualification_id, u.username, u.email,
	w.first_name, w.last_name, w.working_hours, w.productivity, w.salary,
	to_char(w.day_start, 'HH24:MI'), to_char(w.day_end, 'HH24:MI'),
	u.created_at, u.updated_at,
	q.id, q.company_id, q.name, q.modifier, q.created_at, q.updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	var q company.Qualification
	var dayStart, dayEnd string
	err := row.Scan(
		&w.ID, &w.EmployerID, &w.QualificationID, &w.Username, &w.Email,
		&w.FirstName, &w.LastName, &w.WorkingHours, &w.Productivity, &w.Salary,
		&dayStart, &dayEnd,
		&w.CreatedAt, &w.UpdatedAt,
		&q.ID, &q.CompanyID, &q.Name, &q.Modifier, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}
	w.DayStart, _ = validator.IsValidClock(dayStart)
	w.DayEnd, _ = validator.IsValidClock(dayEnd)
	w.Qualification = &q
	return w, nil
}

// Create implements worker.WorkerRepository. The backing user row must be
// created first, in the same transaction.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (id, employer_id, qualification_id, first_name, last_name,
			working_hours, productivity, salary, day_start, day_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::time, $10::time)
	`

	if w.Productivity == 0 {
		w.Productivity = 1
	}

	_, err := q.Exec(ctx, query,
		w.ID, w.EmployerID, w.QualificationID, w.FirstName, w.LastName,
		w.WorkingHours, w.Productivity, w.Salary,
		validator.FormatClock(w.DayStart), validator.FormatClock(w.DayEnd),
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return r.GetByID(ctx, w.ID, w.EmployerID)
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id, employerID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		JOIN users u ON u.id = w.id
		JOIN qualifications q ON q.id = w.qualification_id
		WHERE w.id = $1 AND w.employer_id = $2
	`

	w, err := scanWorker(q.QueryRow(ctx, query, id, employerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

// GetByUserID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByUserID(ctx context.Context, userID string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		JOIN users u ON u.id = w.id
		JOIN qualifications q ON q.id = w.qualification_id
		WHERE w.id = $1
	`

	w, err := scanWorker(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker: %w", err)
	}

	return w, nil
}

func (r *workerRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var result []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		result = append(result, w)
	}

	return result, rows.Err()
}

// ListByCompany implements worker.WorkerRepository.
func (r *workerRepositoryImpl) ListByCompany(ctx context.Context, employerID, search string) ([]worker.Worker, error) {
	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		JOIN users u ON u.id = w.id
		JOIN qualifications q ON q.id = w.qualification_id
		WHERE w.employer_id = $1
		  AND ($2 = '' OR u.username ILIKE '%' || $2 || '%'
		       OR u.email ILIKE '%' || $2 || '%'
		       OR w.first_name ILIKE '%' || $2 || '%'
		       OR w.last_name ILIKE '%' || $2 || '%')
		ORDER BY u.created_at, w.id
	`
	return r.list(ctx, query, employerID, search)
}

// ListRanked implements worker.WorkerRepository. The ordering is the
// assignment engine's candidate ranking and must be stable across runs.
func (r *workerRepositoryImpl) ListRanked(ctx context.Context, employerID string) ([]worker.Worker, error) {
	query := `
		SELECT ` + workerColumns + `
		FROM workers w
		JOIN users u ON u.id = w.id
		JOIN qualifications q ON q.id = w.qualification_id
		WHERE w.employer_id = $1
		ORDER BY w.productivity DESC, q.modifier DESC, w.working_hours DESC, u.created_at, w.id
	`
	return r.list(ctx, query, employerID)
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET qualification_id = $3, first_name = $4, last_name = $5,
		    working_hours = $6, salary = $7, day_start = $8::time, day_end = $9::time
		WHERE id = $1 AND employer_id = $2
	`

	tag, err := q.Exec(ctx, query,
		w.ID, w.EmployerID, w.QualificationID, w.FirstName, w.LastName,
		w.WorkingHours, w.Salary,
		validator.FormatClock(w.DayStart), validator.FormatClock(w.DayEnd),
	)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	return r.GetByID(ctx, w.ID, w.EmployerID)
}

// UpdateProductivity implements worker.WorkerRepository.
func (r *workerRepositoryImpl) UpdateProductivity(ctx context.Context, id string, productivity float64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE workers SET productivity = $2 WHERE id = $1`, id, productivity)
	if err != nil {
		return fmt.Errorf("failed to update productivity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

// Delete implements worker.WorkerRepository. Deleting the user row cascades
// through workers and the schedule.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id, employerID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM users
		WHERE id IN (SELECT id FROM workers WHERE id = $1 AND employer_id = $2)
	`, id, employerID)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}
