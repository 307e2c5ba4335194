package voting

import (
	"context"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/voting"
	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/worker"
)

type VotingServiceImpl struct {
	voting.VotingRepository
	worker.WorkerRepository
}

func NewVotingService(
	votingRepository voting.VotingRepository,
	workerRepository worker.WorkerRepository,
) voting.VotingService {
	return &VotingServiceImpl{
		VotingRepository: votingRepository,
		WorkerRepository: workerRepository,
	}
}

func toVotingResponse(v voting.Voting) voting.VotingResponse {
	return voting.VotingResponse{
		ID:       v.ID,
		Title:    v.Title,
		IsActive: v.IsActive,
	}
}

func toVoteResponse(v voting.Vote) voting.VoteResponse {
	return voting.VoteResponse{
		ID:       v.ID,
		VotingID: v.VotingID,
		TaskID:   v.TaskID,
		Score:    v.Score,
	}
}

// Create implements voting.VotingService.
func (s *VotingServiceImpl) Create(ctx context.Context, companyID string, req voting.CreateVotingRequest) (voting.VotingResponse, error) {
	if err := req.Validate(); err != nil {
		return voting.VotingResponse{}, err
	}

	created, err := s.VotingRepository.Create(ctx, voting.Voting{
		CompanyID: companyID,
		Title:     req.Title,
	})
	if err != nil {
		return voting.VotingResponse{}, err
	}
	return toVotingResponse(created), nil
}

// List implements voting.VotingService.
func (s *VotingServiceImpl) List(ctx context.Context, companyID string) ([]voting.VotingResponse, error) {
	vs, err := s.VotingRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	result := make([]voting.VotingResponse, 0, len(vs))
	for _, v := range vs {
		result = append(result, toVotingResponse(v))
	}
	return result, nil
}

// Close implements voting.VotingService.
func (s *VotingServiceImpl) Close(ctx context.Context, companyID, id string) error {
	return s.VotingRepository.Close(ctx, id, companyID)
}

// Delete implements voting.VotingService.
func (s *VotingServiceImpl) Delete(ctx context.Context, companyID, id string) error {
	return s.VotingRepository.Delete(ctx, id, companyID)
}

// Results implements voting.VotingService.
func (s *VotingServiceImpl) Results(ctx context.Context, companyID, id string) ([]voting.TaskResult, error) {
	if _, err := s.VotingRepository.GetByID(ctx, id, companyID); err != nil {
		return nil, err
	}
	return s.VotingRepository.Results(ctx, id, companyID)
}

// ListOpen implements voting.VotingService.
func (s *VotingServiceImpl) ListOpen(ctx context.Context, workerID string) ([]voting.VotingResponse, error) {
	w, err := s.WorkerRepository.GetByUserID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	vs, err := s.VotingRepository.ListByCompany(ctx, w.EmployerID)
	if err != nil {
		return nil, err
	}
	result := make([]voting.VotingResponse, 0, len(vs))
	for _, v := range vs {
		if v.IsActive {
			result = append(result, toVotingResponse(v))
		}
	}
	return result, nil
}

// Vote implements voting.VotingService.
func (s *VotingServiceImpl) Vote(ctx context.Context, workerID string, req voting.VoteRequest) (voting.VoteResponse, error) {
	if err := req.Validate(); err != nil {
		return voting.VoteResponse{}, err
	}

	v, err := s.VotingRepository.GetForWorker(ctx, req.VotingID, workerID)
	if err != nil {
		return voting.VoteResponse{}, err
	}
	if !v.IsActive {
		return voting.VoteResponse{}, voting.ErrVotingClosed
	}

	created, err := s.VotingRepository.CreateVote(ctx, voting.Vote{
		VotingID: req.VotingID,
		TaskID:   req.TaskID,
		WorkerID: workerID,
		Score:    req.Score,
	})
	if err != nil {
		return voting.VoteResponse{}, err
	}
	return toVoteResponse(created), nil
}

// MyVotes implements voting.VotingService.
func (s *VotingServiceImpl) MyVotes(ctx context.Context, workerID string) ([]voting.VoteResponse, error) {
	votes, err := s.VotingRepository.ListVotesByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	result := make([]voting.VoteResponse, 0, len(votes))
	for _, v := range votes {
		result = append(result, toVoteResponse(v))
	}
	return result, nil
}
