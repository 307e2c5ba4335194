package company

import (
	"context"
	"fmt"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/company"
	"github.com/HuginnARaven/WorkerOnline-server/internal/pkg/database"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CompanyRepository
	company.QualificationRepository
	company.TaskRepository
}

func NewCompanyService(
	db *database.DB,
	companyRepository company.CompanyRepository,
	qualificationRepository company.QualificationRepository,
	taskRepository company.TaskRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		db:                      db,
		CompanyRepository:       companyRepository,
		QualificationRepository: qualificationRepository,
		TaskRepository:          taskRepository,
	}
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:          c.ID,
		Username:    c.Username,
		Email:       c.Email,
		Name:        c.Name,
		Description: c.Description,
		Timezone:    c.Timezone,
	}
}

func toQualificationResponse(q company.Qualification) company.QualificationResponse {
	return company.QualificationResponse{
		ID:       q.ID,
		Name:     q.Name,
		Modifier: q.Modifier,
	}
}

func toTaskResponse(t company.Task) company.TaskResponse {
	resp := company.TaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		EstimateHours: t.EstimateHours,
		CreatedAt:     t.CreatedAt,
	}
	if t.Difficulty != nil {
		qr := toQualificationResponse(*t.Difficulty)
		resp.DifficultyInfo = &qr
	}
	return resp
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, companyID string) (company.CompanyResponse, error) {
	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(c), nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, companyID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c.Name = req.Name
	c.Description = req.Description
	if req.Timezone != "" {
		c.Timezone = req.Timezone
	}

	updated, err := s.CompanyRepository.Update(ctx, c)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toCompanyResponse(updated), nil
}

// CreateQualification implements company.CompanyService.
func (s *CompanyServiceImpl) CreateQualification(ctx context.Context, companyID string, req company.QualificationRequest) (company.QualificationResponse, error) {
	if err := req.Validate(); err != nil {
		return company.QualificationResponse{}, err
	}

	q, err := s.QualificationRepository.Create(ctx, company.Qualification{
		CompanyID: companyID,
		Name:      req.Name,
		Modifier:  req.Modifier,
	})
	if err != nil {
		return company.QualificationResponse{}, fmt.Errorf("failed to create qualification: %w", err)
	}
	return toQualificationResponse(q), nil
}

// ListQualifications implements company.CompanyService.
func (s *CompanyServiceImpl) ListQualifications(ctx context.Context, companyID string) ([]company.QualificationResponse, error) {
	qs, err := s.QualificationRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	result := make([]company.QualificationResponse, 0, len(qs))
	for _, q := range qs {
		result = append(result, toQualificationResponse(q))
	}
	return result, nil
}

// UpdateQualification implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateQualification(ctx context.Context, companyID, id string, req company.QualificationRequest) (company.QualificationResponse, error) {
	if err := req.Validate(); err != nil {
		return company.QualificationResponse{}, err
	}

	q, err := s.QualificationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return company.QualificationResponse{}, err
	}

	q.Name = req.Name
	q.Modifier = req.Modifier

	updated, err := s.QualificationRepository.Update(ctx, q)
	if err != nil {
		return company.QualificationResponse{}, err
	}
	return toQualificationResponse(updated), nil
}

// DeleteQualification implements company.CompanyService.
func (s *CompanyServiceImpl) DeleteQualification(ctx context.Context, companyID, id string) error {
	return s.QualificationRepository.Delete(ctx, id, companyID)
}

// CreateTask implements company.CompanyService.
func (s *CompanyServiceImpl) CreateTask(ctx context.Context, companyID string, req company.TaskRequest) (company.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return company.TaskResponse{}, err
	}

	// The difficulty must be one of the company's own tiers.
	if _, err := s.QualificationRepository.GetByID(ctx, req.DifficultyID, companyID); err != nil {
		if err == company.ErrQualificationNotFound {
			return company.TaskResponse{}, company.ErrForeignQualification
		}
		return company.TaskResponse{}, err
	}

	t, err := s.TaskRepository.Create(ctx, company.Task{
		CompanyID:     companyID,
		DifficultyID:  req.DifficultyID,
		Title:         req.Title,
		Description:   req.Description,
		EstimateHours: req.EstimateHours,
	})
	if err != nil {
		return company.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return toTaskResponse(t), nil
}

// GetTask implements company.CompanyService.
func (s *CompanyServiceImpl) GetTask(ctx context.Context, companyID, id string) (company.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return company.TaskResponse{}, err
	}
	return toTaskResponse(t), nil
}

// ListTasks implements company.CompanyService.
func (s *CompanyServiceImpl) ListTasks(ctx context.Context, companyID string) ([]company.TaskResponse, error) {
	ts, err := s.TaskRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	result := make([]company.TaskResponse, 0, len(ts))
	for _, t := range ts {
		result = append(result, toTaskResponse(t))
	}
	return result, nil
}

// UpdateTask implements company.CompanyService. A task referenced by an
// active appointment is locked against edits.
func (s *CompanyServiceImpl) UpdateTask(ctx context.Context, companyID, id string, req company.TaskRequest) (company.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return company.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return company.TaskResponse{}, err
	}

	locked, err := s.TaskRepository.HasActiveAppointment(ctx, id)
	if err != nil {
		return company.TaskResponse{}, err
	}
	if locked {
		return company.TaskResponse{}, company.ErrTaskLocked
	}

	if _, err := s.QualificationRepository.GetByID(ctx, req.DifficultyID, companyID); err != nil {
		if err == company.ErrQualificationNotFound {
			return company.TaskResponse{}, company.ErrForeignQualification
		}
		return company.TaskResponse{}, err
	}

	t.Title = req.Title
	t.Description = req.Description
	t.EstimateHours = req.EstimateHours
	t.DifficultyID = req.DifficultyID

	updated, err := s.TaskRepository.Update(ctx, t)
	if err != nil {
		return company.TaskResponse{}, err
	}
	return toTaskResponse(updated), nil
}

// DeleteTask implements company.CompanyService.
func (s *CompanyServiceImpl) DeleteTask(ctx context.Context, companyID, id string) error {
	locked, err := s.TaskRepository.HasActiveAppointment(ctx, id)
	if err != nil {
		return err
	}
	if locked {
		return company.ErrTaskLocked
	}
	return s.TaskRepository.Delete(ctx, id, companyID)
}
