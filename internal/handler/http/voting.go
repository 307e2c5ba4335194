package http

import (
	"encoding/json"
	"net/http"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/voting"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/middleware"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VotingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Results(w http.ResponseWriter, r *http.Request)

	ListOpen(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
	MyVotes(w http.ResponseWriter, r *http.Request)
}

type VotingHandlerImpl struct {
	votingService voting.VotingService
}

func NewVotingHandler(votingService voting.VotingService) VotingHandler {
	return &VotingHandlerImpl{votingService: votingService}
}

// Create implements VotingHandler.
func (h *VotingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req voting.CreateVotingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.votingService.Create(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Voting created", resp)
}

// List implements VotingHandler.
func (h *VotingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.votingService.List(r.Context(), identity.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Close implements VotingHandler.
func (h *VotingHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.votingService.Close(r.Context(), identity.CompanyID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Voting closed", nil)
}

// Delete implements VotingHandler.
func (h *VotingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.votingService.Delete(r.Context(), identity.CompanyID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Voting deleted", nil)
}

// Results implements VotingHandler.
func (h *VotingHandlerImpl) Results(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.votingService.Results(r.Context(), identity.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListOpen implements VotingHandler.
func (h *VotingHandlerImpl) ListOpen(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.votingService.ListOpen(r.Context(), identity.WorkerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Vote implements VotingHandler.
func (h *VotingHandlerImpl) Vote(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req voting.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.votingService.Vote(r.Context(), identity.WorkerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vote recorded", resp)
}

// MyVotes implements VotingHandler.
func (h *VotingHandlerImpl) MyVotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.votingService.MyVotes(r.Context(), identity.WorkerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
