package company

import "context"

type CompanyService interface {
	Get(ctx context.Context, companyID string) (CompanyResponse, error)
	Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (CompanyResponse, error)

	CreateQualification(ctx context.Context, companyID string, req QualificationRequest) (QualificationResponse, error)
	ListQualifications(ctx context.Context, companyID string) ([]QualificationResponse, error)
	UpdateQualification(ctx context.Context, companyID, id string, req QualificationRequest) (QualificationResponse, error)
	DeleteQualification(ctx context.Context, companyID, id string) error

	CreateTask(ctx context.Context, companyID string, req TaskRequest) (TaskResponse, error)
	GetTask(ctx context.Context, companyID, id string) (TaskResponse, error)
	ListTasks(ctx context.Context, companyID string) ([]TaskResponse, error)
	UpdateTask(ctx context.Context, companyID, id string, req TaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, companyID, id string) error
}
