package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/voting"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type votingRepositoryImpl struct {
	db *database.DB
}

func NewVotingRepository(db *database.DB) voting.VotingRepository {
	return &votingRepositoryImpl{db: db}
}

const votingColumns = `id, company_id, title, is_active, created_at, updated_at`

func scanVoting(row pgx.Row) (voting.Voting, error) {
	var v voting.Voting
	err := row.Scan(&v.ID, &v.CompanyID, &v.Title, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// Create implements voting.VotingRepository.
func (r *votingRepositoryImpl) Create(ctx context.Context, v voting.Voting) (voting.Voting, error) {
	q := GetQuerier(ctx, r.db)

	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	query := `
		INSERT INTO task_votings (id, company_id, title)
		VALUES ($1, $2, $3)
		RETURNING ` + votingColumns

	created, err := scanVoting(q.QueryRow(ctx, query, v.ID, v.CompanyID, v.Title))
	if err != nil {
		return voting.Voting{}, fmt.Errorf("failed to create voting: %w", err)
	}
	return created, nil
}

// GetByID implements voting.VotingRepository.
func (r *votingRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (voting.Voting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + votingColumns + ` FROM task_votings WHERE id = $1 AND company_id = $2`

	v, err := scanVoting(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return voting.Voting{}, voting.ErrVotingNotFound
		}
		return voting.Voting{}, fmt.Errorf("failed to get voting: %w", err)
	}
	return v, nil
}

// GetForWorker implements voting.VotingRepository.
func (r *votingRepositoryImpl) GetForWorker(ctx context.Context, id, workerID string) (voting.Voting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.company_id, v.title, v.is_active, v.created_at, v.updated_at
		FROM task_votings v
		JOIN workers w ON w.employer_id = v.company_id
		WHERE v.id = $1 AND w.id = $2
	`

	v, err := scanVoting(q.QueryRow(ctx, query, id, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return voting.Voting{}, voting.ErrVotingNotFound
		}
		return voting.Voting{}, fmt.Errorf("failed to get voting: %w", err)
	}
	return v, nil
}

// ListByCompany implements voting.VotingRepository.
func (r *votingRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]voting.Voting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + votingColumns + ` FROM task_votings WHERE company_id = $1 ORDER BY created_at DESC, id`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votings: %w", err)
	}
	defer rows.Close()

	var result []voting.Voting
	for rows.Next() {
		v, err := scanVoting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voting: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

// Close implements voting.VotingRepository.
func (r *votingRepositoryImpl) Close(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE task_votings SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to close voting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return voting.ErrVotingNotFound
	}
	return nil
}

// Delete implements voting.VotingRepository.
func (r *votingRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM task_votings WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete voting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return voting.ErrVotingNotFound
	}
	return nil
}

// CreateVote implements voting.VotingRepository.
func (r *votingRepositoryImpl) CreateVote(ctx context.Context, v voting.Vote) (voting.Vote, error) {
	q := GetQuerier(ctx, r.db)

	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	query := `
		INSERT INTO task_votes (id, voting_id, task_id, worker_id, score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, v.ID, v.VotingID, v.TaskID, v.WorkerID, v.Score).Scan(&v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "uq_vote") {
			return voting.Vote{}, voting.ErrAlreadyVoted
		}
		return voting.Vote{}, fmt.Errorf("failed to create vote: %w", err)
	}
	return v, nil
}

// ListVotesByWorker implements voting.VotingRepository.
func (r *votingRepositoryImpl) ListVotesByWorker(ctx context.Context, workerID string) ([]voting.Vote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, voting_id, task_id, worker_id, score, created_at
		FROM task_votes
		WHERE worker_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var result []voting.Vote
	for rows.Next() {
		var v voting.Vote
		if err := rows.Scan(&v.ID, &v.VotingID, &v.TaskID, &v.WorkerID, &v.Score, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

// Results implements voting.VotingRepository.
func (r *votingRepositoryImpl) Results(ctx context.Context, votingID, companyID string) ([]voting.TaskResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, COUNT(tv.id), COALESCE(SUM(tv.score), 0),
		       COALESCE(AVG(tv.score), 0)
		FROM task_votes tv
		JOIN tasks t ON t.id = tv.task_id
		JOIN task_votings v ON v.id = tv.voting_id
		WHERE tv.voting_id = $1 AND v.company_id = $2
		GROUP BY t.id, t.title
		ORDER BY AVG(tv.score) DESC, COUNT(tv.id) DESC, t.id
	`

	rows, err := q.Query(ctx, query, votingID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate voting results: %w", err)
	}
	defer rows.Close()

	var result []voting.TaskResult
	for rows.Next() {
		var tr voting.TaskResult
		if err := rows.Scan(&tr.TaskID, &tr.Title, &tr.VoteCount, &tr.TotalScore, &tr.AvgScore); err != nil {
			return nil, fmt.Errorf("failed to scan voting result: %w", err)
		}
		result = append(result, tr)
	}
	return result, rows.Err()
}
