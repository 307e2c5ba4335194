package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository. The caller is expected to
// create the backing user row first, in the same transaction.
func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, name, description, timezone)
		VALUES ($1, $2, $3, $4)
	`

	if c.Timezone == "" {
		c.Timezone = "UTC"
	}

	_, err := q.Exec(ctx, query, c.ID, c.Name, c.Description, c.Timezone)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return c, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, u.username, u.email, c.name, c.description, c.timezone, u.created_at, u.updated_at
		FROM companies c
		JOIN users u ON u.id = c.id
		WHERE c.id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Username, &c.Email, &c.Name, &c.Description, &c.Timezone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET name = $2, description = $3, timezone = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, c.ID, c.Name, c.Description, c.Timezone)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.Company{}, company.ErrCompanyNotFound
	}

	return r.GetByID(ctx, c.ID)
}

// GetTimezone implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetTimezone(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var tz string
	err := q.QueryRow(ctx, `SELECT timezone FROM companies WHERE id = $1`, id).Scan(&tz)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", company.ErrCompanyNotFound
		}
		return "", fmt.Errorf("failed to get company timezone: %w", err)
	}
	return tz, nil
}
