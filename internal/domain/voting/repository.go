package voting

import "context"

type VotingRepository interface {
	Create(ctx context.Context, v Voting) (Voting, error)
	GetByID(ctx context.Context, id, companyID string) (Voting, error)
	ListByCompany(ctx context.Context, companyID string) ([]Voting, error)
	// GetForWorker resolves a voting through the worker's employer.
	GetForWorker(ctx context.Context, id, workerID string) (Voting, error)
	Close(ctx context.Context, id, companyID string) error
	Delete(ctx context.Context, id, companyID string) error

	CreateVote(ctx context.Context, v Vote) (Vote, error)
	ListVotesByWorker(ctx context.Context, workerID string) ([]Vote, error)
	// Results aggregates votes per task for one voting.
	Results(ctx context.Context, votingID, companyID string) ([]TaskResult, error)
}
