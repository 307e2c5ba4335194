package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, c Company) (Company, error)
	// Location resolves the company's stored timezone identifier. The stored
	// value is trusted; resolution failures fall back to UTC at the caller.
	GetTimezone(ctx context.Context, id string) (string, error)
}

type QualificationRepository interface {
	Create(ctx context.Context, q Qualification) (Qualification, error)
	GetByID(ctx context.Context, id, companyID string) (Qualification, error)
	ListByCompany(ctx context.Context, companyID string) ([]Qualification, error)
	Update(ctx context.Context, q Qualification) (Qualification, error)
	Delete(ctx context.Context, id, companyID string) error
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id, companyID string) (Task, error)
	ListByCompany(ctx context.Context, companyID string) ([]Task, error)
	// ListUnassigned returns the company's tasks without any appointment,
	// in creation order. The order is the assignment engine's task order.
	ListUnassigned(ctx context.Context, companyID string) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id, companyID string) error
	// HasActiveAppointment reports whether a not-done appointment references
	// the task; such tasks are immutable.
	HasActiveAppointment(ctx context.Context, id string) (bool, error)
}
