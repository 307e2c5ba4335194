package appointment

import "context"

type AppointmentService interface {
	// Create validates every eligibility rule and reports all violations
	// together before committing the appointment.
	Create(ctx context.Context, companyID string, req CreateAppointmentRequest) (AppointmentResponse, error)
	Get(ctx context.Context, companyID, id string) (AppointmentResponse, error)
	List(ctx context.Context, companyID string, isDone *bool) ([]AppointmentResponse, error)

	// Worker-side operations.
	ListMine(ctx context.Context, workerID string, isDone *bool) ([]AppointmentResponse, error)
	MarkDone(ctx context.Context, workerID, id string) (AppointmentResponse, error)
	UpdateStatus(ctx context.Context, workerID, id string, req UpdateStatusRequest) (AppointmentResponse, error)

	// Recommendations lists, for every unassigned task of the company, the
	// eligible workers in ranking order.
	Recommendations(ctx context.Context, companyID string) ([]TaskRecommendation, error)
}
