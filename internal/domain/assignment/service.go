package assignment

import "context"

type AssignmentService interface {
	// Plan runs the greedy pass over the company's unassigned tasks and
	// ranked idle workers. With commit false the plan is only proposed;
	// with commit true each pairing creates its appointment immediately,
	// with the deadline estimated from the current instant.
	Plan(ctx context.Context, companyID string, commit bool) (Plan, error)
}
