package voting

import "errors"

var (
	ErrVotingNotFound = errors.New("voting not found")
	ErrVotingClosed   = errors.New("voting is closed")
	ErrAlreadyVoted   = errors.New("worker already voted for this task")
)
