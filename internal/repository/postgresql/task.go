package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) company.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `
	t.id, t.company_id, t.difficulty_id, t.title, t.description, t.estimate_hours,
	t.created_at, t.updated_at,
	q.id, q.company_id, q.name, q.modifier, q.created_at, q.updated_at
`

func scanTask(row pgx.Row) (company.Task, error) {
	var t company.Task
	var q company.Qualification
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.DifficultyID, &t.Title, &t.Description, &t.EstimateHours,
		&t.CreatedAt, &t.UpdatedAt,
		&q.ID, &q.CompanyID, &q.Name, &q.Modifier, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return company.Task{}, err
	}
	t.Difficulty = &q
	return t, nil
}

// Create implements company.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t company.Task) (company.Task, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tasks (id, company_id, difficulty_id, title, description, estimate_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query, t.ID, t.CompanyID, t.DifficultyID, t.Title, t.Description, t.EstimateHours)
	if err != nil {
		return company.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return r.GetByID(ctx, t.ID, t.CompanyID)
}

// GetByID implements company.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (company.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN qualifications q ON q.id = t.difficulty_id
		WHERE t.id = $1 AND t.company_id = $2
	`

	t, err := scanTask(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Task{}, company.ErrTaskNotFound
		}
		return company.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]company.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var result []company.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

// ListByCompany implements company.TaskRepository.
func (r *taskRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]company.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN qualifications q ON q.id = t.difficulty_id
		WHERE t.company_id = $1
		ORDER BY t.created_at, t.id
	`
	return r.list(ctx, query, companyID)
}

// ListUnassigned implements company.TaskRepository. Creation order is the
// assignment engine's task order, so the ordering keys must stay stable.
func (r *taskRepositoryImpl) ListUnassigned(ctx context.Context, companyID string) ([]company.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN qualifications q ON q.id = t.difficulty_id
		LEFT JOIN task_appointments ta ON ta.task_id = t.id
		WHERE t.company_id = $1 AND ta.id IS NULL
		ORDER BY t.created_at, t.id
	`
	return r.list(ctx, query, companyID)
}

// Update implements company.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t company.Task) (company.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET difficulty_id = $3, title = $4, description = $5, estimate_hours = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, t.ID, t.CompanyID, t.DifficultyID, t.Title, t.Description, t.EstimateHours)
	if err != nil {
		return company.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.Task{}, company.ErrTaskNotFound
	}

	return r.GetByID(ctx, t.ID, t.CompanyID)
}

// Delete implements company.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrTaskNotFound
	}
	return nil
}

// HasActiveAppointment implements company.TaskRepository.
func (r *taskRepositoryImpl) HasActiveAppointment(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM task_appointments WHERE task_id = $1 AND NOT is_done
		)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active appointment: %w", err)
	}
	return exists, nil
}
