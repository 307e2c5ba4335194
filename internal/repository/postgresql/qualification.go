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

type qualificationRepositoryImpl struct {
	db *database.DB
}

func NewQualificationRepository(db *database.DB) company.QualificationRepository {
	return &qualificationRepositoryImpl{db: db}
}

// Create implements company.QualificationRepository.
func (r *qualificationRepositoryImpl) Create(ctx context.Context, q company.Qualification) (company.Qualification, error) {
	querier := GetQuerier(ctx, r.db)

	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	query := `
		INSERT INTO qualifications (id, company_id, name, modifier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query, q.ID, q.CompanyID, q.Name, q.Modifier).
		Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return company.Qualification{}, fmt.Errorf("failed to create qualification: %w", err)
	}

	return q, nil
}

// GetByID implements company.QualificationRepository.
func (r *qualificationRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (company.Qualification, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, modifier, created_at, updated_at
		FROM qualifications
		WHERE id = $1 AND company_id = $2
	`

	var q company.Qualification
	err := querier.QueryRow(ctx, query, id, companyID).
		Scan(&q.ID, &q.CompanyID, &q.Name, &q.Modifier, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Qualification{}, company.ErrQualificationNotFound
		}
		return company.Qualification{}, fmt.Errorf("failed to get qualification: %w", err)
	}

	return q, nil
}

// ListByCompany implements company.QualificationRepository.
func (r *qualificationRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]company.Qualification, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, modifier, created_at, updated_at
		FROM qualifications
		WHERE company_id = $1
		ORDER BY modifier, created_at
	`

	rows, err := querier.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list qualifications: %w", err)
	}
	defer rows.Close()

	var result []company.Qualification
	for rows.Next() {
		var q company.Qualification
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.Name, &q.Modifier, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan qualification: %w", err)
		}
		result = append(result, q)
	}

	return result, rows.Err()
}

// Update implements company.QualificationRepository.
func (r *qualificationRepositoryImpl) Update(ctx context.Context, q company.Qualification) (company.Qualification, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE qualifications
		SET name = $3, modifier = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := querier.Exec(ctx, query, q.ID, q.CompanyID, q.Name, q.Modifier)
	if err != nil {
		return company.Qualification{}, fmt.Errorf("failed to update qualification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.Qualification{}, company.ErrQualificationNotFound
	}

	return r.GetByID(ctx, q.ID, q.CompanyID)
}

// Delete implements company.QualificationRepository.
func (r *qualificationRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM qualifications WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete qualification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrQualificationNotFound
	}
	return nil
}
