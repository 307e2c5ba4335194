package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
)

type logRepositoryImpl struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) worker.LogRepository {
	return &logRepositoryImpl{db: db}
}

// Create implements worker.LogRepository.
func (r *logRepositoryImpl) Create(ctx context.Context, l worker.Log) (worker.Log, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	query := `
		INSERT INTO worker_logs (id, worker_id, task_id, type, description)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, l.ID, l.WorkerID, l.TaskID, string(l.Type), l.Description).
		Scan(&l.CreatedAt)
	if err != nil {
		return worker.Log{}, fmt.Errorf("failed to create worker log: %w", err)
	}

	return l, nil
}

func (r *logRepositoryImpl) list(ctx context.Context, where string, f worker.LogFilter, args []interface{}) ([]worker.Log, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conds []string
	conds = append(conds, where)
	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("l.type = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, fmt.Sprintf("l.created_at >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, fmt.Sprintf("l.created_at <= $%d", len(args)))
	}
	clause := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM worker_logs l JOIN workers w ON w.id = l.worker_id WHERE ` + clause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count worker logs: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT l.id, l.worker_id, COALESCE(l.task_id::text, ''), l.type, l.description, l.created_at
		FROM worker_logs l
		JOIN workers w ON w.id = l.worker_id
		WHERE %s
		ORDER BY l.created_at DESC, l.id
		LIMIT $%d OFFSET $%d
	`, clause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list worker logs: %w", err)
	}
	defer rows.Close()

	var result []worker.Log
	for rows.Next() {
		var l worker.Log
		var logType string
		if err := rows.Scan(&l.ID, &l.WorkerID, &l.TaskID, &logType, &l.Description, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker log: %w", err)
		}
		l.Type = worker.LogType(logType)
		result = append(result, l)
	}

	return result, total, rows.Err()
}

// ListByCompany implements worker.LogRepository.
func (r *logRepositoryImpl) ListByCompany(ctx context.Context, companyID string, f worker.LogFilter) ([]worker.Log, int64, error) {
	args := []interface{}{companyID}
	where := "w.employer_id = $1"
	if f.WorkerID != "" {
		args = append(args, f.WorkerID)
		where += " AND l.worker_id = $2"
	}
	return r.list(ctx, where, f, args)
}

// ListByWorker implements worker.LogRepository.
func (r *logRepositoryImpl) ListByWorker(ctx context.Context, workerID string, f worker.LogFilter) ([]worker.Log, int64, error) {
	return r.list(ctx, "l.worker_id = $1", f, []interface{}{workerID})
}
