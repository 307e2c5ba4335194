package voting

import "context"

type VotingService interface {
	Create(ctx context.Context, companyID string, req CreateVotingRequest) (VotingResponse, error)
	List(ctx context.Context, companyID string) ([]VotingResponse, error)
	Close(ctx context.Context, companyID, id string) error
	Delete(ctx context.Context, companyID, id string) error
	Results(ctx context.Context, companyID, id string) ([]TaskResult, error)

	// Worker-side operations.
	ListOpen(ctx context.Context, workerID string) ([]VotingResponse, error)
	Vote(ctx context.Context, workerID string, req VoteRequest) (VoteResponse, error)
	MyVotes(ctx context.Context, workerID string) ([]VoteResponse, error)
}
