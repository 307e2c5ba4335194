package http

import (
	"net/http"
	"strconv"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/assignment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/middleware"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/response"
)

type AssignmentHandler interface {
	Plan(w http.ResponseWriter, r *http.Request)
	Commit(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandlerImpl struct {
	assignmentService assignment.AssignmentService
}

func NewAssignmentHandler(assignmentService assignment.AssignmentService) AssignmentHandler {
	return &AssignmentHandlerImpl{assignmentService: assignmentService}
}

// Plan implements AssignmentHandler. Dry run by default; ?steps=true keeps
// the per-decision snapshots in the payload.
func (h *AssignmentHandlerImpl) Plan(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, false)
}

// Commit implements AssignmentHandler.
func (h *AssignmentHandlerImpl) Commit(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, true)
}

func (h *AssignmentHandlerImpl) run(w http.ResponseWriter, r *http.Request, commit bool) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	plan, err := h.assignmentService.Plan(r.Context(), identity.CompanyID, commit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if withSteps, _ := strconv.ParseBool(r.URL.Query().Get("steps")); !withSteps {
		plan.Steps = nil
	}

	response.Success(w, plan)
}
